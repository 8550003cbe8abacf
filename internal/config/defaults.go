package config

func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

// DefaultProfile returns the built-in "default" profile used as the root
// of every inheritance chain, and as the synthesized ancestor when an
// .orang.toml file defines no explicit "default" entry.
func DefaultProfile() *Profile {
	return &Profile{
		Recursive:        boolPtr(true),
		FollowSymlinks:   boolPtr(false),
		MaxMatchingFiles: intPtr(0), // 0 == unbounded
		IgnoreCase:       boolPtr(false),
		Multiline:        boolPtr(false),
		ExplicitCapture:  boolPtr(false),
		DryRun:           boolPtr(false),
		Format:           strPtr("text"),
		Conflict:         strPtr("ask"),
		Compare:          []string{"content", "modified_time", "size"},
		Encoding:         strPtr("utf-8"),
	}
}
