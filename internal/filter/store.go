package filter

import (
	"net/url"
	"strings"
)

// Navigator receives URL rewrites when the applied state changes. The
// products page wires this to an HTTP redirect or history replacement; tests
// wire a recorder.
type Navigator interface {
	Replace(query url.Values)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(query url.Values)

// Replace implements Navigator.
func (f NavigatorFunc) Replace(query url.Values) { f(query) }

// Store owns the applied filter state (mirrored into the URL) and a separate
// draft used by the mobile bottom-sheet editor. All updates are synchronous;
// the store is meant for single-goroutine, per-request use and carries no
// locking.
type Store struct {
	applied     State
	draft       State
	searchInput string
	editorOpen  bool

	// query mirrors the full current URL query, including keys the store
	// does not own (category and anything else), so rewrites preserve them.
	query url.Values
	nav   Navigator
	subs  []func(State)
}

// NewStore builds a store whose applied and draft states are both decoded
// from the given URL query. A nil navigator drops URL rewrites.
func NewStore(query url.Values, nav Navigator) *Store {
	initial := Parse(query)
	return &Store{
		applied:     initial,
		draft:       initial.Clone(),
		searchInput: initial.Query,
		query:       cloneQuery(query),
		nav:         nav,
	}
}

// State returns the applied filter state.
func (s *Store) State() State { return s.applied.Clone() }

// DraftState returns the draft filter state edited by the mobile sheet.
func (s *Store) DraftState() State { return s.draft.Clone() }

// SearchInput returns the free-text buffer, which may differ from the
// applied query until the search is submitted.
func (s *Store) SearchInput() string { return s.searchInput }

// SetSearchInput updates the free-text buffer without touching applied state
// or the URL.
func (s *Store) SetSearchInput(input string) { s.searchInput = input }

// EditorOpen reports whether the mobile editor is showing.
func (s *Store) EditorOpen() bool { return s.editorOpen }

// Subscribe registers fn to run after every applied-state change.
func (s *Store) Subscribe(fn func(State)) {
	if fn != nil {
		s.subs = append(s.subs, fn)
	}
}

// Update merges the patch into the applied state. The state only moves when
// the merge result differs, and the URL is rewritten with exactly the
// changed keys. A no-op patch produces no navigation event.
func (s *Store) Update(p Patch) {
	next := Merge(s.applied, p)
	s.apply(next, EncodePatch(p))
}

// UpdateDraft merges the patch into the draft with the same
// merge-if-different discipline, never touching the URL.
func (s *Store) UpdateDraft(p Patch) {
	next := Merge(s.draft, p)
	if !Equal(s.draft, next) {
		s.draft = next
	}
}

// ToggleCooking toggles a cooking method on the applied selection, honoring
// the multi-select cap.
func (s *Store) ToggleCooking(value string) {
	next := Toggle(s.applied.Cooking, value, MaxMultiSelect)
	s.Update(Patch{Cooking: &next})
}

// ToggleForm toggles a product form on the applied selection.
func (s *Store) ToggleForm(value string) {
	next := Toggle(s.applied.Form, value, MaxMultiSelect)
	s.Update(Patch{Form: &next})
}

// ToggleDraftCooking toggles a cooking method on the draft.
func (s *Store) ToggleDraftCooking(value string) {
	next := Toggle(s.draft.Cooking, value, MaxMultiSelect)
	s.UpdateDraft(Patch{Cooking: &next})
}

// ToggleDraftForm toggles a product form on the draft.
func (s *Store) ToggleDraftForm(value string) {
	next := Toggle(s.draft.Form, value, MaxMultiSelect)
	s.UpdateDraft(Patch{Form: &next})
}

// ApplySearch commits the search buffer into the applied query.
func (s *Store) ApplySearch() {
	trimmed := strings.TrimSpace(s.searchInput)
	s.Update(Patch{Query: &trimmed})
}

// Reset restores the applied state to defaults and removes every optional
// key from the URL.
func (s *Store) Reset() {
	s.searchInput = ""
	s.apply(Default(), ClearAll())
}

// ResetDraft restores the draft to defaults without touching applied state
// or the URL.
func (s *Store) ResetDraft() {
	if !Equal(s.draft, Default()) {
		s.draft = Default()
	}
}

// OpenEditor copies the applied state into the draft (only when different)
// and marks the mobile editor open.
func (s *Store) OpenEditor() {
	if !Equal(s.draft, s.applied) {
		s.draft = s.applied.Clone()
	}
	s.editorOpen = true
}

// CloseEditor dismisses the mobile editor, discarding nothing: the applied
// state and the URL stay exactly as they were.
func (s *Store) CloseEditor() { s.editorOpen = false }

// CommitDraft promotes the draft to applied in one step, mirrors the full
// draft into the URL, and closes the editor.
func (s *Store) CommitDraft() {
	if s.searchInput != s.draft.Query {
		s.searchInput = s.draft.Query
	}
	s.apply(s.draft.Clone(), encodeFull(s.draft))
	s.editorOpen = false
}

// Query returns a copy of the store's view of the current URL query.
func (s *Store) Query() url.Values { return cloneQuery(s.query) }

func (s *Store) apply(next State, delta map[string]string) {
	if !Equal(s.applied, next) {
		s.applied = next
		for _, fn := range s.subs {
			fn(next.Clone())
		}
	}
	s.rewriteURL(delta)
}

// rewriteURL folds the delta into the tracked query and notifies the
// navigator only when the encoded query actually changed.
func (s *Store) rewriteURL(delta map[string]string) {
	before := s.query.Encode()
	for key, value := range delta {
		if value == "" {
			s.query.Del(key)
		} else {
			s.query.Set(key, value)
		}
	}
	if s.nav != nil && s.query.Encode() != before {
		s.nav.Replace(cloneQuery(s.query))
	}
}

func cloneQuery(values url.Values) url.Values {
	cp := make(url.Values, len(values))
	for key, list := range values {
		cp[key] = append([]string(nil), list...)
	}
	return cp
}
