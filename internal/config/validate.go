package config

import "fmt"

var validConflictValues = map[string]bool{"left": true, "right": true, "ask": true}
var validCompareValues = map[string]bool{"attributes": true, "content": true, "modified_time": true, "size": true}
var validFormatValues = map[string]bool{"text": true, "json": true}

// Validate checks a fully resolved Profile's enum-valued fields, returning
// a descriptive error naming the field and the offending value for the
// first problem found.
func Validate(p *Profile) error {
	if p.Conflict != nil && !validConflictValues[*p.Conflict] {
		return fmt.Errorf("config: invalid conflict value %q (want left, right, or ask)", *p.Conflict)
	}
	if p.Format != nil && !validFormatValues[*p.Format] {
		return fmt.Errorf("config: invalid format value %q (want text or json)", *p.Format)
	}
	for _, c := range p.Compare {
		if !validCompareValues[c] {
			return fmt.Errorf("config: invalid compare value %q (want attributes, content, modified_time, or size)", c)
		}
	}
	if p.MaxMatchingFiles != nil && *p.MaxMatchingFiles < 0 {
		return fmt.Errorf("config: max_matching_files must be >= 0, got %d", *p.MaxMatchingFiles)
	}
	return nil
}
