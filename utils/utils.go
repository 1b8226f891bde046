package utils

import (
	"fmt"
	"time"
)

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	secs := int64(d.Round(time.Second) / time.Second)
	if secs < 60 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}

	days, secs := secs/86400, secs%86400
	hours, secs := secs/3600, secs%3600
	mins, secs := secs/60, secs%60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd:%dh:%dm:%ds", days, hours, mins, secs)
	case hours > 0:
		return fmt.Sprintf("%dh:%dm:%ds", hours, mins, secs)
	}
	return fmt.Sprintf("%dm:%ds", mins, secs)
}
