package main

import (
	"testing"
)

func TestSearchMatch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{
			name:   "empty query passes everything",
			query:  "",
			fields: []string{"anything"},
			want:   true,
		},
		{
			name:   "whitespace query passes everything",
			query:  "   ",
			fields: []string{"anything"},
			want:   true,
		},
		{
			name:   "substring match on first field",
			query:  "ptsd",
			fields: []string{"PTSD Support Group", "Focused discussion"},
			want:   true,
		},
		{
			name:   "substring match on later field",
			query:  "anxiety",
			fields: []string{"PTSD Support Group", "Focused discussion", "Anxiety"},
			want:   true,
		},
		{
			name:   "case insensitive both ways",
			query:  "YOGA",
			fields: []string{"Trauma-Informed yoga"},
			want:   true,
		},
		{
			name:   "no field contains query",
			query:  "kubernetes",
			fields: []string{"General Support", "A safe space"},
			want:   false,
		},
		{
			name:   "no fields at all",
			query:  "x",
			fields: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchMatch(tt.query, tt.fields...); got != tt.want {
				t.Errorf("SearchMatch(%q, %v) = %v, want %v", tt.query, tt.fields, got, tt.want)
			}
		})
	}
}

func TestChoiceMatch(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		sentinel string
		value    string
		want     bool
	}{
		{"sentinel deactivates the filter", "all", "all", "video", true},
		{"exact match passes", "video", "all", "video", true},
		{"mismatch fails", "video", "all", "article", false},
		{"comparison is case sensitive", "Video", "all", "video", false},
		{"rooms page sentinel", "All", "All", "General", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChoiceMatch(tt.selected, tt.sentinel, tt.value); got != tt.want {
				t.Errorf("ChoiceMatch(%q, %q, %q) = %v, want %v", tt.selected, tt.sentinel, tt.value, got, tt.want)
			}
		})
	}
}

func TestFlagMatch(t *testing.T) {
	tests := []struct {
		name string
		flag bool
		cond bool
		want bool
	}{
		{"flag off passes regardless", false, false, true},
		{"flag off passes satisfying entity", false, true, true},
		{"flag on requires condition", true, false, false},
		{"flag on with condition passes", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlagMatch(tt.flag, tt.cond); got != tt.want {
				t.Errorf("FlagMatch(%v, %v) = %v, want %v", tt.flag, tt.cond, got, tt.want)
			}
		})
	}
}

func TestMatchAll(t *testing.T) {
	truthy := func(int) bool { return true }
	falsy := func(int) bool { return false }

	if !MatchAll(1) {
		t.Error("no predicates should pass")
	}
	if !MatchAll(1, truthy, truthy) {
		t.Error("all true should pass")
	}
	if MatchAll(1, truthy, falsy) {
		t.Error("one false predicate must fail the conjunction")
	}
}

// Filter conjunction: the projection keeps exactly the entities for which
// every active predicate holds.
func TestFilterConjunction(t *testing.T) {
	rooms := seedRooms()

	view := NewRoomView()
	view.SetSearch("support")
	view.SetCategory(RoomCategoryGeneral)
	view.SetFlag(true) // VR only

	got := ProjectRooms(rooms, view)

	for _, r := range got {
		if !SearchMatch("support", append([]string{r.Name, r.Description}, r.Tags...)...) {
			t.Errorf("room %s does not match search", r.ID)
		}
		if r.Category != RoomCategoryGeneral {
			t.Errorf("room %s has category %s", r.ID, r.Category)
		}
		if !r.IsVREnabled {
			t.Errorf("room %s is not VR enabled", r.ID)
		}
	}

	// Ground truth: General Support (1) and Survivors Circle (4) are the
	// general VR rooms mentioning "support"; popular order puts 1 first.
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "4" {
		ids := make([]string, 0, len(got))
		for _, r := range got {
			ids = append(ids, r.ID)
		}
		t.Errorf("got rooms %v, want [1 4]", ids)
	}
}
