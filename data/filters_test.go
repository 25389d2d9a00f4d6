package data

import (
	"testing"

	"github.com/emzola/liber/internal/validator"
)

func TestValidateFilters(t *testing.T) {
	safeList := []string{"id", "title", "-id", "-title"}
	tests := []struct {
		name    string
		filters Filters
		valid   bool
	}{
		{"valid", Filters{Page: 1, PageSize: 10, Sort: "id", SortSafeList: safeList}, true},
		{"valid descending", Filters{Page: 2, PageSize: 50, Sort: "-title", SortSafeList: safeList}, true},
		{"unknown sort key rejected", Filters{Page: 1, PageSize: 10, Sort: "popularity", SortSafeList: safeList}, false},
		{"zero page", Filters{Page: 0, PageSize: 10, Sort: "id", SortSafeList: safeList}, false},
		{"oversized page size", Filters{Page: 1, PageSize: 1000, Sort: "id", SortSafeList: safeList}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateFilters(v, tt.filters)
			if v.Valid() != tt.valid {
				t.Errorf("valid = %v; want %v (errors: %v)", v.Valid(), tt.valid, v.Errors)
			}
		})
	}
}

func TestSortColumnAndDirection(t *testing.T) {
	f := Filters{Sort: "-title", SortSafeList: []string{"title", "-title"}}
	if col := f.SortColumn(); col != "title" {
		t.Errorf("SortColumn() = %q; want %q", col, "title")
	}
	if dir := f.SortDirection(); dir != "DESC" {
		t.Errorf("SortDirection() = %q; want %q", dir, "DESC")
	}
}

func TestSortColumnPanicsOnUnsafeValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsafe sort value")
		}
	}()
	f := Filters{Sort: "drop table", SortSafeList: []string{"id"}}
	f.SortColumn()
}

func TestCalculateMetadata(t *testing.T) {
	m := CalculateMetadata(95, 2, 10)
	if m.LastPage != 10 {
		t.Errorf("LastPage = %d; want 10", m.LastPage)
	}
	if m.TotalRecords != 95 {
		t.Errorf("TotalRecords = %d; want 95", m.TotalRecords)
	}
	empty := CalculateMetadata(0, 1, 10)
	if empty != (Metadata{}) {
		t.Errorf("metadata for zero records should be zero value; got %+v", empty)
	}
}
