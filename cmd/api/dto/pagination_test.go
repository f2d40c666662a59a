package dto

import "testing"

func TestNewPaginationDerivesPageCount(t *testing.T) {
	p := NewPagination([]string{"a", "b"}, 1, 20, 45)
	if p.Pages != 3 {
		t.Fatalf("expected 3 pages for 45 items at size 20, got %d", p.Pages)
	}
	if p.Total != 45 || p.Page != 1 || p.PageSize != 20 {
		t.Fatalf("unexpected envelope: %+v", p)
	}
}

func TestNewPaginationEmptyResult(t *testing.T) {
	p := NewPagination([]int{}, 1, 20, 0)
	if p.Pages != 0 {
		t.Fatalf("expected 0 pages, got %d", p.Pages)
	}
	if p.Items == nil {
		t.Fatalf("expected items to stay non-nil for JSON encoding")
	}
}

func TestNewPaginationZeroPageSize(t *testing.T) {
	p := NewPagination([]int{1}, 1, 0, 10)
	if p.Pages != 0 {
		t.Fatalf("expected 0 pages when page size is 0, got %d", p.Pages)
	}
}
