package catalog

// Band is one canonical frequency band of the external logging program.
// Code doubles as the band's position in every per-band table.
type Band struct {
	Label string
	Code  uint16
}

// bands lists every band in canonical code order. 136kHz carries the highest
// code even though it is the lowest frequency; the order is the consumer's,
// not ours.
var bands = []Band{
	{Label: "1.9MHz", Code: 0},
	{Label: "3.5MHz", Code: 1},
	{Label: "7MHz", Code: 2},
	{Label: "10MHz", Code: 3},
	{Label: "14MHz", Code: 4},
	{Label: "18MHz", Code: 5},
	{Label: "21MHz", Code: 6},
	{Label: "24MHz", Code: 7},
	{Label: "28MHz", Code: 8},
	{Label: "50MHz", Code: 9},
	{Label: "144MHz", Code: 10},
	{Label: "430MHz", Code: 11},
	{Label: "1200MHz", Code: 12},
	{Label: "2400MHz", Code: 13},
	{Label: "5600MHz", Code: 14},
	{Label: "10GHz", Code: 15},
	{Label: "24GHz", Code: 16},
	{Label: "47GHz", Code: 17},
	{Label: "75GHz", Code: 18},
	{Label: "77GHz", Code: 19},
	{Label: "135GHz", Code: 20},
	{Label: "248GHz", Code: 21},
	{Label: "136kHz", Code: 22},
}

var bandByLabel = func() map[string]Band {
	m := make(map[string]Band, len(bands))
	for _, b := range bands {
		m[b.Label] = b
	}
	return m
}()

// Bands returns every band in canonical code order. The returned slice is a
// copy; callers may not assume it aliases internal state.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// BandByLabel resolves a band from its display label.
func BandByLabel(label string) (Band, bool) {
	b, ok := bandByLabel[label]
	return b, ok
}

// BandByCode resolves a band from its wire code.
func BandByCode(code uint16) (Band, bool) {
	if int(code) >= len(bands) {
		return Band{}, false
	}
	return bands[code], true
}
