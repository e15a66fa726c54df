package utils

import (
	"strconv"
	"strings"
)

// ParseSkills splits a comma-separated skill list into a trimmed slice,
// dropping empty entries. Order is preserved.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// ParseRate parses an hourly rate. Unparsable or negative input falls back
// to 0 rather than failing the profile update.
func ParseRate(raw string) float64 {
	rate, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || rate < 0 {
		return 0
	}
	return rate
}
