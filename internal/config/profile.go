package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// maxInheritanceDepth is the chain length past which ResolveProfile still
// resolves correctly but logs a warning, since very deep chains are
// usually a sign the profiles should be flattened.
const maxInheritanceDepth = 3

// ProfileResolution is a profile with its inheritance chain fully merged
// into a single value.
type ProfileResolution struct {
	Profile *Profile
	Chain   []string
}

// ResolveProfile follows name's Extends chain, merging ancestor values
// beneath the requested profile's own (child always wins on fields it
// sets), and returns the flattened result. The built-in "default" profile
// is always available as the ultimate base even when profiles defines no
// explicit "default" entry.
func ResolveProfile(name string, profiles map[string]*Profile) (*ProfileResolution, error) {
	resolution, err := resolveChain(name, profiles, nil)
	if err != nil {
		return nil, err
	}

	if depth := len(resolution.Chain); depth > maxInheritanceDepth {
		slog.Warn("deep profile inheritance; consider flattening",
			"profile", name, "depth", depth, "chain", strings.Join(resolution.Chain, " -> "))
	}
	return resolution, nil
}

func resolveChain(name string, profiles map[string]*Profile, visited []string) (*ProfileResolution, error) {
	for _, v := range visited {
		if v == name {
			return nil, fmt.Errorf("circular profile inheritance: %s", strings.Join(append(visited, name), " -> "))
		}
	}
	visited = append(visited, name)

	profile := lookupProfile(name, profiles)
	if profile == nil {
		return nil, fmt.Errorf("profile %q is not defined", name)
	}

	if profile.Extends == nil || *profile.Extends == "" {
		if name == "default" {
			merged := mergeProfile(DefaultProfile(), profile)
			return &ProfileResolution{Profile: merged, Chain: []string{name}}, nil
		}
		defaultRes, err := resolveChain("default", profiles, nil)
		if err != nil {
			return nil, fmt.Errorf("resolving default base for %q: %w", name, err)
		}
		merged := mergeProfile(defaultRes.Profile, profile)
		return &ProfileResolution{Profile: merged, Chain: append([]string{name}, defaultRes.Chain...)}, nil
	}

	parentRes, err := resolveChain(*profile.Extends, profiles, visited)
	if err != nil {
		return nil, fmt.Errorf("resolving parent %q for profile %q: %w", *profile.Extends, name, err)
	}
	merged := mergeProfile(parentRes.Profile, profile)
	return &ProfileResolution{Profile: merged, Chain: append([]string{name}, parentRes.Chain...)}, nil
}

func lookupProfile(name string, profiles map[string]*Profile) *Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	if name == "default" {
		return DefaultProfile()
	}
	return nil
}
