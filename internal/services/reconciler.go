package services

// NewGameIDs computes which game ids still need registration: the union of
// discovered and manual ids minus the handled set, de-duplicated. The result
// keeps first-appearance order of discovered, followed by manual ids not
// already present. Pure function; identical inputs always yield identical
// output.
func NewGameIDs(discovered, manual, handled []string) []string {
	handledSet := make(map[string]struct{}, len(handled))
	for _, id := range handled {
		handledSet[id] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, id := range append(append([]string{}, discovered...), manual...) {
		if _, ok := handledSet[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
