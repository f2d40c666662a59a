package repositories

import "testing"

func TestListNewsOptionsNormalize(t *testing.T) {
	testCases := []struct {
		name         string
		in           ListNewsOptions
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", in: ListNewsOptions{}, wantPage: 1, wantPageSize: 20},
		{name: "negative page", in: ListNewsOptions{Page: -3, PageSize: 20}, wantPage: 1, wantPageSize: 20},
		{name: "oversized page size", in: ListNewsOptions{Page: 2, PageSize: 150}, wantPage: 2, wantPageSize: 100},
		{name: "in range untouched", in: ListNewsOptions{Page: 4, PageSize: 50}, wantPage: 4, wantPageSize: 50},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := testCase.in.Normalize()
			if got.Page != testCase.wantPage || got.PageSize != testCase.wantPageSize {
				t.Fatalf("Normalize() = page %d size %d, want page %d size %d",
					got.Page, got.PageSize, testCase.wantPage, testCase.wantPageSize)
			}
		})
	}
}

func TestListArticlesOptionsNormalize(t *testing.T) {
	got := ListArticlesOptions{PageSize: 150}.Normalize()
	if got.Page != 1 || got.PageSize != 100 {
		t.Fatalf("Normalize() = page %d size %d, want page 1 size 100", got.Page, got.PageSize)
	}
	got = ListArticlesOptions{}.Normalize()
	if got.PageSize != 10 {
		t.Fatalf("default page size = %d, want 10", got.PageSize)
	}
}
