package filter

import (
	"net/url"
	"strings"
)

// Query parameter names on the products surface. Category is deliberately
// not part of State; it is read separately from the same URL.
const (
	ParamCategory  = "category"
	ParamQuery     = "query"
	ParamSort      = "sort"
	ParamPrice     = "price"
	ParamProtein   = "protein"
	ParamCalories  = "calories"
	ParamTaste     = "taste"
	ParamCooking   = "cooking"
	ParamForm      = "form"
	ParamValueTop  = "valueTop"
	ParamLowSodium = "lowSodium"
)

// stateParams lists every key owned by State, in canonical order.
var stateParams = []string{
	ParamQuery, ParamSort, ParamPrice, ParamProtein, ParamCalories,
	ParamTaste, ParamCooking, ParamForm, ParamValueTop, ParamLowSodium,
}

// Parse reconstructs a State from URL query values. Absent keys take their
// defaults; unrecognized tokens pass through untouched so they can fail
// predicates or fall back at the label lookup instead of being rejected.
func Parse(values url.Values) State {
	s := Default()
	if v := values.Get(ParamQuery); v != "" {
		s.Query = strings.TrimSpace(v)
	}
	if v := values.Get(ParamSort); v != "" {
		s.Sort = v
	}
	if v := values.Get(ParamPrice); v != "" {
		s.Price = v
	}
	if v := values.Get(ParamProtein); v != "" {
		s.Protein = v
	}
	if v := values.Get(ParamCalories); v != "" {
		s.Calories = v
	}
	if v := values.Get(ParamTaste); v != "" {
		s.Taste = v
	}
	s.Cooking = parseMulti(values.Get(ParamCooking))
	s.Form = parseMulti(values.Get(ParamForm))
	s.ValueTop = values.Get(ParamValueTop) == "true"
	s.LowSodium = values.Get(ParamLowSodium) == "true"
	return s
}

// Encode writes the canonical minimal query for s: every field equal to its
// empty sentinel is omitted. Parse(Encode(s)) == s for every reachable state.
func Encode(s State) url.Values {
	values := url.Values{}
	for key, value := range encodeFull(s) {
		if value != "" {
			values.Set(key, value)
		}
	}
	return values
}

// EncodePatch translates a partial update into a query-string delta: key to
// written token, or key to "" when the key must be removed from the URL.
func EncodePatch(p Patch) map[string]string {
	delta := map[string]string{}
	if p.Query != nil {
		delta[ParamQuery] = strings.TrimSpace(*p.Query)
	}
	if p.Sort != nil {
		delta[ParamSort] = scalarSortToken(*p.Sort)
	}
	if p.Price != nil {
		delta[ParamPrice] = scalarToken(*p.Price)
	}
	if p.Protein != nil {
		delta[ParamProtein] = scalarToken(*p.Protein)
	}
	if p.Calories != nil {
		delta[ParamCalories] = scalarToken(*p.Calories)
	}
	if p.Taste != nil {
		delta[ParamTaste] = scalarToken(*p.Taste)
	}
	if p.Cooking != nil {
		delta[ParamCooking] = strings.Join(*p.Cooking, ",")
	}
	if p.Form != nil {
		delta[ParamForm] = strings.Join(*p.Form, ",")
	}
	if p.ValueTop != nil {
		delta[ParamValueTop] = boolToken(*p.ValueTop)
	}
	if p.LowSodium != nil {
		delta[ParamLowSodium] = boolToken(*p.LowSodium)
	}
	return delta
}

// encodeFull maps every state key to its token, "" meaning "omit".
func encodeFull(s State) map[string]string {
	return map[string]string{
		ParamQuery:     strings.TrimSpace(s.Query),
		ParamSort:      scalarSortToken(s.Sort),
		ParamPrice:     scalarToken(s.Price),
		ParamProtein:   scalarToken(s.Protein),
		ParamCalories:  scalarToken(s.Calories),
		ParamTaste:     scalarToken(s.Taste),
		ParamCooking:   strings.Join(s.Cooking, ","),
		ParamForm:      strings.Join(s.Form, ","),
		ParamValueTop:  boolToken(s.ValueTop),
		ParamLowSodium: boolToken(s.LowSodium),
	}
}

// ClearAll is the delta that removes every state-owned key, used by reset.
func ClearAll() map[string]string {
	delta := make(map[string]string, len(stateParams))
	for _, key := range stateParams {
		delta[key] = ""
	}
	return delta
}

func parseMulti(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		values = append(values, part)
		if len(values) == MaxMultiSelect {
			break
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func scalarToken(v string) string {
	if v == All {
		return ""
	}
	return v
}

// The default sort is what an absent key parses to, so writing it would
// break the canonical minimal form.
func scalarSortToken(v string) string {
	if v == DefaultSort {
		return ""
	}
	return v
}

func boolToken(v bool) string {
	if v {
		return "true"
	}
	return ""
}
