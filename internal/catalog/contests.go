package catalog

// Contest is one entry of the contest pulldown table. Kind is only meaningful
// when KindKnown is true; md-referenced contests leave the kind to metadata
// extraction or the user-defined-multi default.
type Contest struct {
	Name      string
	Key       string
	Kind      uint16
	KindKnown bool
}

var contests = []Contest{
	{Name: "All JA", Key: "allja", Kind: 1, KindKnown: true},
	{Name: "6m and down", Key: "6md", Kind: 2, KindKnown: true},
	{Name: "全市全郡 (ACAG)", Key: "acag", Kind: 4, KindKnown: true},
	{Name: "Field Day", Key: "fd", Kind: 64, KindKnown: true},
	{Name: "All Asian DX", Key: "aa", Kind: 8, KindKnown: true},
	{Name: "CQ WW DX", Key: "cqww", Kind: 7, KindKnown: true},
	{Name: "オール東北", Key: ""},
	{Name: "オール宮城", Key: ""},
}

var contestByName = func() map[string]Contest {
	m := make(map[string]Contest, len(contests))
	for _, c := range contests {
		m[c.Name] = c
	}
	return m
}()

// Contests returns the contest table in presentation order. The returned
// slice is a copy.
func Contests() []Contest {
	out := make([]Contest, len(contests))
	copy(out, contests)
	return out
}

// ContestByName resolves a contest from its display name.
func ContestByName(name string) (Contest, bool) {
	c, ok := contestByName[name]
	return c, ok
}
