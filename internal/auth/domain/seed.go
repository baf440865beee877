package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedAdmins returns the built-in admin list. Admins are never created or
// deleted at runtime.
func SeedAdmins() []AdminProfile {
	return []AdminProfile{
		{
			ID:       "admin-1",
			Username: "Silverhold",
			Name:     "SilverHold Official",
			Role:     RoleAdmin,
			Quote:    "Jangan lupa sholat walaupun kamu seorang pendosa allah lebih suka orang pendosa yang sering bertaubat dari pada orang yang merasa suci",
			Hashtags: []string{"bismillahcalonustad"},
			PhotoURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
			Password: "Rian",
		},
		{
			ID:       "admin-2",
			Username: "BraynOfficial",
			Name:     "Brayn Official",
			Role:     RoleOwner,
			Quote:    "Tidak Semua Orang Suka Kita Berkembang Pesat!",
			Hashtags: []string{"backenddev", "frontenddev", "BraynOfficial"},
			PhotoURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop",
			Password: "Plerr321",
		},
	}
}

type seedFile struct {
	Admins []AdminProfile `yaml:"admins"`
}

// LoadSeedFile reads an admin list from YAML:
//
//	admins:
//	  - id: admin-1
//	    username: Silverhold
//	    ...
func LoadSeedFile(path string) ([]AdminProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read admin seed: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse admin seed %s: %w", path, err)
	}
	if len(f.Admins) == 0 {
		return nil, fmt.Errorf("admin seed %s has no admins", path)
	}

	seen := make(map[string]bool, len(f.Admins))
	for i, a := range f.Admins {
		if a.ID == "" || a.Username == "" {
			return nil, fmt.Errorf("admin seed %s: entry %d needs id and username", path, i)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("admin seed %s: duplicate id %q", path, a.ID)
		}
		seen[a.ID] = true
		if a.Role == "" {
			f.Admins[i].Role = RoleAdmin
		}
		if f.Admins[i].Hashtags == nil {
			f.Admins[i].Hashtags = []string{}
		}
	}
	return f.Admins, nil
}
