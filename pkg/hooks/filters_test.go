package hooks

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nextcell/cellkit/pkg/cell"
)

type userFilters struct {
	UserID string
	Status string
}

func newFiltersCell(t *testing.T, def FiltersState[userFilters]) *cell.Cell[FiltersState[userFilters]] {
	t.Helper()
	c := NewFiltersCell(cell.Config[FiltersState[userFilters]]{Key: t.Name(), Default: def})
	t.Cleanup(func() { cell.Unregister(t.Name()) })
	return c
}

func TestFiltersSetters_ApplySetsAppliedAndValues(t *testing.T) {
	c := newFiltersCell(t, FiltersState[userFilters]{Values: userFilters{UserID: ""}})
	s := FiltersSettersOf(c)

	s.Apply(userFilters{UserID: "8"})

	got := c.Read()
	if !got.IsApplied {
		t.Error("apply must set IsApplied")
	}
	if got.Values.UserID != "8" {
		t.Errorf("expected userID '8', got %q", got.Values.UserID)
	}
}

func TestFiltersSetters_ApplyAlwaysSetsApplied(t *testing.T) {
	c := newFiltersCell(t, FiltersState[userFilters]{})
	s := FiltersSettersOf(c)

	s.Apply(userFilters{UserID: "1"})
	s.SetApplied(false)
	s.Apply(userFilters{UserID: "2"})

	if !c.Read().IsApplied {
		t.Error("apply must set IsApplied regardless of prior value")
	}
}

func TestFiltersSetters_ApplyFn(t *testing.T) {
	c := newFiltersCell(t, FiltersState[userFilters]{Values: userFilters{Status: "active"}})
	s := FiltersSettersOf(c)

	s.ApplyFn(func(v userFilters) userFilters {
		v.UserID = "42"
		return v
	})

	got := c.Read()
	if !got.IsApplied {
		t.Error("applyFn must set IsApplied")
	}
	want := userFilters{UserID: "42", Status: "active"}
	if diff := cmp.Diff(want, got.Values); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestFiltersSetters_OpenCloseIndependentOfApplied(t *testing.T) {
	c := newFiltersCell(t, FiltersState[userFilters]{})
	s := FiltersSettersOf(c)

	s.Open()
	if got := c.Read(); !got.IsOpen || got.IsApplied {
		t.Errorf("open must not touch IsApplied, got %+v", got)
	}

	s.SetApplied(true)
	s.Close()
	if got := c.Read(); got.IsOpen || !got.IsApplied {
		t.Errorf("close must not touch IsApplied, got %+v", got)
	}
}

func TestFiltersSetters_UpdateOpenAndUpdateApplied(t *testing.T) {
	c := newFiltersCell(t, FiltersState[userFilters]{})
	s := FiltersSettersOf(c)

	s.UpdateOpen(func(open bool) bool { return !open })
	s.UpdateApplied(func(applied bool) bool { return !applied })

	got := c.Read()
	if !got.IsOpen || !got.IsApplied {
		t.Errorf("expected both flags toggled on, got %+v", got)
	}
}

func TestFiltersSetters_ResetRestoresExactDefault(t *testing.T) {
	// Scenario: apply({userId:'8'}) -> open() -> reset() -> exact default.
	def := FiltersState[userFilters]{Values: userFilters{UserID: ""}}
	c := newFiltersCell(t, def)
	s := FiltersSettersOf(c)

	s.Apply(userFilters{UserID: "8"})
	s.Open()
	s.Reset()

	if diff := cmp.Diff(def, c.Read()); diff != "" {
		t.Errorf("reset must restore the exact default (-want +got):\n%s", diff)
	}
}
