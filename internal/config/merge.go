package config

// mergeProfile returns a new Profile with override's explicitly set fields
// applied on top of base, and base's values kept wherever override leaves
// a field nil. Neither argument is mutated; the result always has
// Extends == nil (the chain is considered fully resolved).
func mergeProfile(base, override *Profile) *Profile {
	return &Profile{
		Recursive:        mergeBool(base.Recursive, override.Recursive),
		FollowSymlinks:   mergeBool(base.FollowSymlinks, override.FollowSymlinks),
		MaxMatchingFiles: mergeInt(base.MaxMatchingFiles, override.MaxMatchingFiles),
		IgnoreCase:       mergeBool(base.IgnoreCase, override.IgnoreCase),
		Multiline:        mergeBool(base.Multiline, override.Multiline),
		ExplicitCapture:  mergeBool(base.ExplicitCapture, override.ExplicitCapture),
		DryRun:           mergeBool(base.DryRun, override.DryRun),
		Format:           mergeString(base.Format, override.Format),
		Conflict:         mergeString(base.Conflict, override.Conflict),
		Compare:          mergeSlice(base.Compare, override.Compare),
		Encoding:         mergeString(base.Encoding, override.Encoding),
		Extends:          nil,
	}
}

func mergeBool(base, override *bool) *bool {
	if override != nil {
		return override
	}
	return base
}

func mergeInt(base, override *int) *int {
	if override != nil {
		return override
	}
	return base
}

func mergeString(base, override *string) *string {
	if override != nil {
		return override
	}
	return base
}

func mergeSlice(base, override []string) []string {
	if len(override) > 0 {
		out := make([]string, len(override))
		copy(out, override)
		return out
	}
	if len(base) > 0 {
		out := make([]string, len(base))
		copy(out, base)
		return out
	}
	return nil
}
