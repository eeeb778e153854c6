package domain

// ChoiceGroup is the form-boundary adapter for a mutually exclusive set of
// options rendered as checkboxes. Internally everything is an enum; the map
// of booleans only exists where the intake payload needs it.
type ChoiceGroup map[string]bool

func NewChoiceGroup(keys ...string) ChoiceGroup {
	g := make(ChoiceGroup, len(keys))
	for _, k := range keys {
		g[k] = false
	}
	return g
}

// Select marks key as the single active member, clearing every other one.
func (g ChoiceGroup) Select(key string) {
	for k := range g {
		g[k] = false
	}
	g[key] = true
}

// Selected returns the active member. ok is false unless exactly one
// member is active.
func (g ChoiceGroup) Selected() (string, bool) {
	var (
		selected string
		count    int
	)
	for k, v := range g {
		if v {
			selected = k
			count++
		}
	}
	return selected, count == 1
}
