package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// navRecorder captures every URL rewrite the store emits.
type navRecorder struct {
	calls []url.Values
}

func (r *navRecorder) Replace(query url.Values) { r.calls = append(r.calls, query) }

func newTestStore(rawQuery string) (*Store, *navRecorder) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		panic(err)
	}
	rec := &navRecorder{}
	return NewStore(values, rec), rec
}

func TestStoreInitialState(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=chicken&price=under20000&cooking=grilled,smoked")
	state := s.State()
	require.Equal(t, "under20000", state.Price)
	require.Equal(t, []string{"grilled", "smoked"}, state.Cooking)
	require.True(t, Equal(state, s.DraftState()))
	require.Empty(t, rec.calls, "construction must not navigate")
	require.False(t, s.EditorOpen())
}

func TestStoreUpdateRewritesChangedKeysOnly(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=chicken&price=under20000")
	protein := "25"
	s.Update(Patch{Protein: &protein})

	require.Len(t, rec.calls, 1)
	got := rec.calls[0]
	require.Equal(t, "chicken", got.Get(ParamCategory), "keys the store does not own survive rewrites")
	require.Equal(t, "under20000", got.Get(ParamPrice))
	require.Equal(t, "25", got.Get(ParamProtein))
}

func TestStoreNoOpUpdateEmitsNoNavigation(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=chicken&price=under20000")
	price := "under20000"
	s.Update(Patch{Price: &price})
	require.Empty(t, rec.calls)

	// patching a field back to its sentinel when already absent is a no-op too
	all := All
	s.Update(Patch{Taste: &all})
	require.Empty(t, rec.calls)
}

func TestStoreUpdateToSentinelRemovesKey(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=chicken&price=under20000")
	all := All
	s.Update(Patch{Price: &all})

	require.Len(t, rec.calls, 1)
	require.False(t, rec.calls[0].Has(ParamPrice))
	require.Equal(t, All, s.State().Price)
}

func TestStoreSubscribersFireOncePerChange(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore("")
	var seen []State
	s.Subscribe(func(next State) { seen = append(seen, next) })

	price := "over30000"
	s.Update(Patch{Price: &price})
	s.Update(Patch{Price: &price})

	require.Len(t, seen, 1)
	require.Equal(t, "over30000", seen[0].Price)
}

func TestStoreToggleCookingHonorsCap(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("")
	s.ToggleCooking("grilled")
	s.ToggleCooking("smoked")
	require.Equal(t, []string{"grilled", "smoked"}, s.State().Cooking)
	require.Len(t, rec.calls, 2)

	// third value: state and URL stay put
	s.ToggleCooking("steamed")
	require.Equal(t, []string{"grilled", "smoked"}, s.State().Cooking)
	require.Len(t, rec.calls, 2)

	// removing re-opens a slot
	s.ToggleCooking("grilled")
	require.Equal(t, []string{"smoked"}, s.State().Cooking)
	require.Equal(t, "smoked", rec.calls[2].Get(ParamCooking))
}

func TestStoreApplySearchTrims(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=protein")
	s.SetSearchInput("  크런치 바  ")
	s.ApplySearch()

	require.Equal(t, "크런치 바", s.State().Query)
	require.Len(t, rec.calls, 1)
	require.Equal(t, "크런치 바", rec.calls[0].Get(ParamQuery))
}

func TestStoreResetClearsEverythingButCategory(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=chicken&query=스테이크&sort=priceAsc&price=under20000&cooking=grilled&valueTop=true")
	s.Reset()

	require.True(t, Equal(Default(), s.State()))
	require.Empty(t, s.SearchInput())
	require.Len(t, rec.calls, 1)
	got := rec.calls[0]
	require.Equal(t, "chicken", got.Get(ParamCategory))
	for _, key := range stateParams {
		require.False(t, got.Has(key), "key %s should be removed", key)
	}

	// resetting an already-default store does nothing
	s.Reset()
	require.Len(t, rec.calls, 1)
}

func TestStoreDraftEditsLeaveAppliedAndURLAlone(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=chicken&price=under20000")
	s.OpenEditor()
	require.True(t, s.EditorOpen())
	require.True(t, Equal(s.State(), s.DraftState()))

	protein := "30"
	s.UpdateDraft(Patch{Protein: &protein})
	s.ToggleDraftCooking("grilled")

	require.Equal(t, "30", s.DraftState().Protein)
	require.Equal(t, All, s.State().Protein)
	require.Empty(t, s.State().Cooking)
	require.Empty(t, rec.calls)

	// cancel: applied state and URL are untouched, draft is simply abandoned
	s.CloseEditor()
	require.False(t, s.EditorOpen())
	require.Equal(t, All, s.State().Protein)
	require.Empty(t, rec.calls)

	// reopening snaps the draft back to the applied state
	s.OpenEditor()
	require.Equal(t, All, s.DraftState().Protein)
}

func TestStoreCommitDraft(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=chicken&price=under20000")
	s.OpenEditor()

	all := All
	query := "소시지"
	valueTop := true
	s.UpdateDraft(Patch{Price: &all, Query: &query, ValueTop: &valueTop})
	s.ToggleDraftForm("sausage")
	s.CommitDraft()

	require.False(t, s.EditorOpen())
	require.True(t, Equal(s.DraftState(), s.State()))
	require.Equal(t, "소시지", s.SearchInput())

	require.Len(t, rec.calls, 1)
	got := rec.calls[0]
	require.Equal(t, "chicken", got.Get(ParamCategory))
	require.False(t, got.Has(ParamPrice), "price went back to the sentinel")
	require.Equal(t, "소시지", got.Get(ParamQuery))
	require.Equal(t, "sausage", got.Get(ParamForm))
	require.Equal(t, "true", got.Get(ParamValueTop))
}

func TestStoreCommitUnchangedDraftEmitsNoNavigation(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=chicken&price=under20000")
	s.OpenEditor()
	s.CommitDraft()
	require.Empty(t, rec.calls)
	require.False(t, s.EditorOpen())
}

func TestStoreResetDraft(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore("category=chicken&price=under20000&cooking=grilled")
	s.OpenEditor()
	s.ResetDraft()

	require.True(t, Equal(Default(), s.DraftState()))
	require.Equal(t, "under20000", s.State().Price, "applied state waits for the commit")
	require.Empty(t, rec.calls)

	s.CommitDraft()
	require.True(t, Equal(Default(), s.State()))
	require.Len(t, rec.calls, 1)
	require.False(t, rec.calls[0].Has(ParamPrice))
	require.False(t, rec.calls[0].Has(ParamCooking))
	require.Equal(t, "chicken", rec.calls[0].Get(ParamCategory))
}

func TestStoreNilNavigator(t *testing.T) {
	t.Parallel()

	values, _ := url.ParseQuery("price=under20000")
	s := NewStore(values, nil)
	all := All
	s.Update(Patch{Price: &all})
	require.Equal(t, All, s.State().Price)
	require.False(t, s.Query().Has(ParamPrice))
}
