// ABOUTME: Duration formatting utilities for recipe preparation times
// ABOUTME: Converts minute counts into short human readable strings

package duration

import (
	"fmt"
	"strings"
)

// MinutesToHumanReadable converts a minute count to "1 hour 5 minutes" style text.
// Zero or negative input yields an empty string.
func MinutesToHumanReadable(minutes int) string {
	if minutes <= 0 {
		return ""
	}

	hours := minutes / 60
	rest := minutes % 60

	parts := []string{}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour", hours))
		if hours > 1 {
			parts[len(parts)-1] += "s"
		}
	}
	if rest > 0 {
		parts = append(parts, fmt.Sprintf("%d minute", rest))
		if rest > 1 {
			parts[len(parts)-1] += "s"
		}
	}

	return strings.Join(parts, " ")
}
