package utils

import (
	"strings"
	"time"
)

const (
	layoutDate    = "2006-01-02"
	layoutDisplay = "02/01/2006"
)

// ParseDate parses YYYY-MM-DD as a calendar date in UTC. Day arithmetic on
// the result is immune to DST transitions in the server timezone.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// DisplayDate converts a YYYY-MM-DD form value to dd/MM/yyyy for the report.
// Unparseable input is returned unchanged so one bad field never aborts a build.
func DisplayDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(layoutDisplay)
}
