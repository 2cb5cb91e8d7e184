package pagination

import "testing"

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty", 1, 10, 0, 0, false, false},
		{"single page", 1, 10, 7, 1, false, false},
		{"exact fit", 1, 10, 20, 2, true, false},
		{"remainder adds a page", 2, 10, 21, 3, true, true},
		{"last page", 3, 10, 21, 3, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := GetMeta(&Params{Page: tt.page, Limit: tt.limit}, tt.total)
			if meta.TotalPages != tt.totalPages {
				t.Fatalf("total pages = %d, want %d", meta.TotalPages, tt.totalPages)
			}
			if meta.HasNext != tt.hasNext {
				t.Fatalf("has next = %v, want %v", meta.HasNext, tt.hasNext)
			}
			if meta.HasPrev != tt.hasPrev {
				t.Fatalf("has prev = %v, want %v", meta.HasPrev, tt.hasPrev)
			}
		})
	}
}
