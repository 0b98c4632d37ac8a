package filter

import "strings"

// State is one immutable-per-update snapshot of every filter the products
// surface understands. The zero value is not meaningful; use Default or
// Parse.
type State struct {
	Query     string
	Sort      string
	Price     string
	Protein   string
	Calories  string
	Taste     string
	Cooking   []string
	Form      []string
	ValueTop  bool
	LowSodium bool
}

// Default returns the state every optional URL key decodes to when absent:
// empty query, value-for-money sort, "all" for every scalar, empty
// selections, both toggles off.
func Default() State {
	return State{
		Sort:     DefaultSort,
		Price:    All,
		Protein:  All,
		Calories: All,
		Taste:    All,
	}
}

// Patch is a partial state update. Nil fields are left untouched by Merge; a
// pointer to the zero value explicitly resets that field.
type Patch struct {
	Query     *string
	Sort      *string
	Price     *string
	Protein   *string
	Calories  *string
	Taste     *string
	Cooking   *[]string
	Form      *[]string
	ValueTop  *bool
	LowSodium *bool
}

// Merge applies the patch on top of s and returns the result. Query values
// are trimmed, matching what the URL round-trip would produce.
func Merge(s State, p Patch) State {
	next := s.Clone()
	if p.Query != nil {
		next.Query = strings.TrimSpace(*p.Query)
	}
	if p.Sort != nil {
		next.Sort = *p.Sort
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.Protein != nil {
		next.Protein = *p.Protein
	}
	if p.Calories != nil {
		next.Calories = *p.Calories
	}
	if p.Taste != nil {
		next.Taste = *p.Taste
	}
	if p.Cooking != nil {
		next.Cooking = cloneValues(*p.Cooking)
	}
	if p.Form != nil {
		next.Form = cloneValues(*p.Form)
	}
	if p.ValueTop != nil {
		next.ValueTop = *p.ValueTop
	}
	if p.LowSodium != nil {
		next.LowSodium = *p.LowSodium
	}
	return next
}

// Equal reports structural equality, order-sensitive for the multi-select
// fields.
func Equal(a, b State) bool {
	return a.Query == b.Query &&
		a.Sort == b.Sort &&
		a.Price == b.Price &&
		a.Protein == b.Protein &&
		a.Calories == b.Calories &&
		a.Taste == b.Taste &&
		a.ValueTop == b.ValueTop &&
		a.LowSodium == b.LowSodium &&
		valuesEqual(a.Cooking, b.Cooking) &&
		valuesEqual(a.Form, b.Form)
}

// Clone returns a deep copy so that callers can hold onto snapshots safely.
func (s State) Clone() State {
	cp := s
	cp.Cooking = cloneValues(s.Cooking)
	cp.Form = cloneValues(s.Form)
	return cp
}

// Toggle returns values with value removed when already present, appended
// when below the cap, and unchanged when the cap is reached. Removal is
// always permitted; the caller's UI is expected to disable additions at the
// cap rather than rely on the silent no-op.
func Toggle(values []string, value string, limit int) []string {
	for i, existing := range values {
		if existing == value {
			next := make([]string, 0, len(values)-1)
			next = append(next, values[:i]...)
			next = append(next, values[i+1:]...)
			return next
		}
	}
	if len(values) >= limit {
		return cloneValues(values)
	}
	next := make([]string, 0, len(values)+1)
	next = append(next, values...)
	return append(next, value)
}

func cloneValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	cp := make([]string, len(values))
	copy(cp, values)
	return cp
}

func valuesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func contains(values []string, value string) bool {
	for _, existing := range values {
		if existing == value {
			return true
		}
	}
	return false
}

// Selected reports whether value is part of the given multi-select field.
func Selected(values []string, value string) bool {
	return contains(values, value)
}
