package repository

import "strings"

// joinActivities flattens an activity list into the single text column the
// records table carries, one line per activity.
func joinActivities(activities []string) string {
	return strings.Join(activities, "\n")
}

// splitActivities reverses joinActivities, dropping blank lines.
func splitActivities(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
