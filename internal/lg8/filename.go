package lg8

import "fmt"

// FileName builds the conventional container file name for a contest year,
// contest key, and band label, e.g. "2026_allja_7MHz.lg8".
func FileName(year, key, bandLabel string) string {
	return fmt.Sprintf("%s_%s_%s.lg8", year, key, bandLabel)
}
