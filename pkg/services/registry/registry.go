package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/az-tools/cost-advisor/pkg/models/domain"
	"github.com/az-tools/cost-advisor/pkg/services/advisor"
	"github.com/az-tools/cost-advisor/pkg/services/synth"
)

// SourceOptions tune how a source materializes its fleet. A zero Seed
// means the source's default; sources backed by fixed tables ignore it.
type SourceOptions struct {
	Seed int64
}

// Source supplies the fleet of records for one advisor domain.
type Source interface {
	Fleet(ctx context.Context, opts SourceOptions) (domain.Fleet, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context, opts SourceOptions) (domain.Fleet, error)

func (f SourceFunc) Fleet(ctx context.Context, opts SourceOptions) (domain.Fleet, error) {
	return f(ctx, opts)
}

// Entry binds a tiering policy to the source that feeds it.
type Entry struct {
	Policy domain.Policy
	Source Source
}

// Registry maps advisor domain names to their policy and record source.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Default returns a registry preloaded with the built-in domains backed
// by synthetic sources.
func Default() *Registry {
	r := NewRegistry()
	r.Register("blob", Entry{
		Policy: advisor.BlobAccessTierPolicy(),
		Source: SourceFunc(func(ctx context.Context, opts SourceOptions) (domain.Fleet, error) {
			blobOpts := synth.DefaultBlobOptions()
			if opts.Seed != 0 {
				blobOpts.Seed = opts.Seed
			}
			return synth.GenerateBlobs(blobOpts), nil
		}),
	})
	r.Register("vm", Entry{
		Policy: advisor.VMUtilizationPolicy(),
		Source: SourceFunc(func(ctx context.Context, opts SourceOptions) (domain.Fleet, error) {
			vmOpts := synth.DefaultVMOptions()
			if opts.Seed != 0 {
				vmOpts.Seed = opts.Seed
			}
			return synth.GenerateVMs(vmOpts), nil
		}),
	})
	r.Register("account", Entry{
		Policy: advisor.StorageAccountTierPolicy(),
		// Fixed sample table; the seed does not apply.
		Source: SourceFunc(func(ctx context.Context, opts SourceOptions) (domain.Fleet, error) {
			return synth.StorageAccounts(), nil
		}),
	})
	return r
}

// Register adds or replaces a domain entry.
func (r *Registry) Register(name string, entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entry
}

// Get returns the entry for a domain name.
func (r *Registry) Get(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown domain %q", name)
	}
	return entry, nil
}

// Domains lists the registered domain names, sorted.
func (r *Registry) Domains() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Recommend resolves a domain and runs its policy over its source with
// default source options.
func (r *Registry) Recommend(ctx context.Context, name string) ([]domain.Recommendation, error) {
	entry, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	fleet, err := entry.Source.Fleet(ctx, SourceOptions{})
	if err != nil {
		return nil, fmt.Errorf("load %s fleet: %w", name, err)
	}
	return advisor.Recommend(fleet.Records, entry.Policy)
}
