package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile carries the report labels taken from an Azure CLI style config
// file (`~/.azure/config` format).
type Profile struct {
	Subscription string
	Currency     string
}

// DefaultProfile is used when no profile file is supplied.
func DefaultProfile() Profile {
	return Profile{Subscription: "default", Currency: "USD"}
}

// LoadProfile reads the [core] section of an ini profile file.
func LoadProfile(path string) (Profile, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to load profile %s: %w", path, err)
	}

	section := cfg.Section("core")
	profile := DefaultProfile()
	if name := section.Key("subscription").String(); name != "" {
		profile.Subscription = name
	}
	if currency := section.Key("currency").String(); currency != "" {
		profile.Currency = currency
	}
	return profile, nil
}
