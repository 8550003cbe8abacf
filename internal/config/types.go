// Package config provides Orang's configuration loading, named-profile
// resolution, and logging setup. It is a foundational cross-cutting
// concern used by internal/cli and, through it, by every verb. Profiles
// follow a "child overrides parent, scalars win when set (non-nil), slices replace
// wholesale" merge rule across the types/defaults/merge/profile/loader/
// logging file split.
package config

// Config is the top-level shape of an .orang.toml file: a map of named
// profiles, each a reusable bundle of default command-line options.
type Config struct {
	Profile map[string]*Profile `toml:"profile"`
}

// Profile bundles default option values a command can be pointed at with
// --profile instead of repeating flags. Pointer fields distinguish "unset,
// inherit from parent/built-in default" from an explicit zero value.
type Profile struct {
	// Extends names a parent profile this one inherits unset fields from.
	Extends *string `toml:"extends"`

	// Traversal behavior.
	Recursive        *bool `toml:"recursive"`
	FollowSymlinks   *bool `toml:"follow_symlinks"`
	MaxMatchingFiles *int  `toml:"max_matching_files"`

	// Regex behavior applied to any filter the command doesn't override
	// per-flag.
	IgnoreCase      *bool `toml:"ignore_case"`
	Multiline       *bool `toml:"multiline"`
	ExplicitCapture *bool `toml:"explicit_capture"`

	// Output behavior.
	DryRun *bool   `toml:"dry_run"`
	Format *string `toml:"format"` // "text" or "json"

	// Sync-specific defaults.
	Conflict *string  `toml:"conflict"` // "left", "right", or "ask"
	Compare  []string `toml:"compare"`  // any of "attributes", "content", "modified_time", "size"

	// Encoding is the fallback text encoding for content searches/replaces
	// whose files carry no BOM.
	Encoding *string `toml:"encoding"`
}
