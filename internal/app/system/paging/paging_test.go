package paging

import "testing"

func TestSlice(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name      string
		limit     int64
		skip      int64
		want      []int
		wantTotal int64
	}{
		{"first page", 3, 0, []int{1, 2, 3}, 7},
		{"middle page", 3, 3, []int{4, 5, 6}, 7},
		{"short last page", 3, 6, []int{7}, 7},
		{"skip past end", 3, 10, []int{}, 7},
		{"skip equals length", 3, 7, []int{}, 7},
		{"zero limit means rest", 0, 2, []int{3, 4, 5, 6, 7}, 7},
		{"negative skip clamped", 2, -5, []int{1, 2}, 7},
		{"limit beyond end", 100, 5, []int{6, 7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := Slice(list, tt.limit, tt.skip)
			if total != tt.wantTotal {
				t.Errorf("Slice() total = %d, want %d", total, tt.wantTotal)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Slice() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Slice() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSlice_EmptyList(t *testing.T) {
	got, total := Slice([]string{}, 5, 0)
	if total != 0 || len(got) != 0 {
		t.Errorf("Slice(empty) = (%v, %d), want ([], 0)", got, total)
	}
}

func TestSlice_CopyDoesNotAliasInput(t *testing.T) {
	list := []int{1, 2, 3}
	got, _ := Slice(list, 2, 0)
	got[0] = 99
	if list[0] != 1 {
		t.Error("Slice() must copy, not alias, the input window")
	}
}

func TestParams_FindOptionsDefaults(t *testing.T) {
	opts := Params{}.findOptions()
	if opts.Sort == nil {
		t.Error("expected default sort to be applied")
	}
	if opts.Limit != nil {
		t.Error("expected no limit when Limit is zero")
	}
	if opts.Skip != nil {
		t.Error("expected no skip when Skip is zero")
	}
}

func TestParams_FindOptionsWindow(t *testing.T) {
	opts := Params{Limit: 10, Skip: 20}.findOptions()
	if opts.Limit == nil || *opts.Limit != 10 {
		t.Error("expected limit 10")
	}
	if opts.Skip == nil || *opts.Skip != 20 {
		t.Error("expected skip 20")
	}
}
