package export

import (
	"fmt"
	"regexp"
	"strings"
)

const maxNameLen = 180

var unsafeRuns = regexp.MustCompile(`[^\w.\-]+`)

// SafeName turns a tag name into a filesystem-safe file stem: runs of
// characters outside [A-Za-z0-9_.-] collapse to a single underscore,
// leading and trailing underscores are trimmed, and the result is capped
// at 180 characters. A name that sanitizes to nothing falls back to the
// ValueID.
func SafeName(name string, valueID int32) string {
	s := unsafeRuns.ReplaceAllString(name, "_")
	s = strings.Trim(s, "_")
	if len(s) > maxNameLen {
		s = s[:maxNameLen]
	}
	if s == "" {
		return fmt.Sprintf("tag_%d", valueID)
	}

	return s
}
