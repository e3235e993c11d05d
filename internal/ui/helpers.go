package ui

import "strconv"

// truncate shortens s to max runes, appending an ellipsis when it cuts.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// formatPrice renders a price without trailing zeros, the way the catalog
// cards show it.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
