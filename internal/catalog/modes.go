package catalog

// Mode is one operating mode of the external logging program.
type Mode struct {
	Label string
	Code  uint16
}

var modes = []Mode{
	{Label: "CW", Code: 0},
	{Label: "RTTY", Code: 1},
	{Label: "SSB", Code: 2},
	{Label: "FM", Code: 3},
	{Label: "AM", Code: 4},
	{Label: "ATV", Code: 5},
	{Label: "SSTV", Code: 6},
	{Label: "PSK", Code: 7},
	{Label: "GMSK", Code: 8},
	{Label: "MFSK", Code: 9},
	{Label: "QPSK", Code: 10},
	{Label: "FSK", Code: 11},
	{Label: "D-STAR", Code: 12},
	{Label: "C4FM", Code: 13},
	{Label: "JT65", Code: 14},
	{Label: "JT9", Code: 15},
	{Label: "ISCAT", Code: 16},
	{Label: "FT8", Code: 17},
	{Label: "JT4", Code: 18},
	{Label: "QRA64", Code: 19},
	{Label: "MSK144", Code: 20},
	{Label: "WSPR", Code: 21},
	{Label: "JTMS", Code: 22},
	{Label: "FT4", Code: 23},
	{Label: "FST4", Code: 24},
}

var modeByLabel = func() map[string]Mode {
	m := make(map[string]Mode, len(modes))
	for _, mode := range modes {
		m[mode.Label] = mode
	}
	return m
}()

// Modes returns every mode in code order. The returned slice is a copy.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ModeByLabel resolves a mode from its display label.
func ModeByLabel(label string) (Mode, bool) {
	m, ok := modeByLabel[label]
	return m, ok
}

// ModeByCode resolves a mode from its wire code.
func ModeByCode(code uint16) (Mode, bool) {
	if int(code) >= len(modes) {
		return Mode{}, false
	}
	return modes[code], true
}
