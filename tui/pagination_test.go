package tui

import (
	"testing"
)

func pagesOf(items []PageItem) []int {
	out := []int{}
	for _, it := range items {
		if !it.Ellipsis {
			out = append(out, it.Page)
		}
	}
	return out
}

func TestPageWindowSimpleMode(t *testing.T) {
	for total := 1; total <= 7; total++ {
		for cur := 1; cur <= total; cur++ {
			items := PageWindow(cur, total)
			if len(items) != total {
				t.Fatalf("total=%d cur=%d: expected %d items, got %d", total, cur, total, len(items))
			}
			active := 0
			for i, it := range items {
				if it.Ellipsis {
					t.Errorf("total=%d cur=%d: unexpected ellipsis", total, cur)
				}
				if it.Page != i+1 {
					t.Errorf("total=%d cur=%d: expected page %d at index %d, got %d", total, cur, i+1, i, it.Page)
				}
				if it.Active {
					active++
					if it.Page != cur {
						t.Errorf("total=%d cur=%d: wrong active page %d", total, cur, it.Page)
					}
				}
			}
			if active != 1 {
				t.Errorf("total=%d cur=%d: expected exactly one active page, got %d", total, cur, active)
			}
		}
	}
}

func TestPageWindowTenPages(t *testing.T) {
	cases := []struct {
		current int
		pages   []int
	}{
		{1, []int{1, 2, 3, 4, 5, 10}},
		{10, []int{1, 6, 7, 8, 9, 10}},
		{5, []int{1, 4, 5, 6, 10}},
	}
	for _, tc := range cases {
		items := PageWindow(tc.current, 10)
		got := pagesOf(items)
		if len(got) != len(tc.pages) {
			t.Fatalf("current=%d: expected pages %v, got %v", tc.current, tc.pages, got)
		}
		for i := range got {
			if got[i] != tc.pages[i] {
				t.Errorf("current=%d: expected pages %v, got %v", tc.current, tc.pages, got)
				break
			}
		}
	}

	// Ellipsis placement for the three canonical shapes
	w := PageWindow(1, 10)
	if !w[5].Ellipsis || w[6].Page != 10 {
		t.Errorf("current=1: expected right ellipsis before final page, got %+v", w)
	}
	w = PageWindow(10, 10)
	if !w[1].Ellipsis || w[0].Page != 1 {
		t.Errorf("current=10: expected left ellipsis after first page, got %+v", w)
	}
	w = PageWindow(5, 10)
	if !w[1].Ellipsis || !w[5].Ellipsis {
		t.Errorf("current=5: expected ellipsis on both sides, got %+v", w)
	}
}

func TestPageWindowInvariants(t *testing.T) {
	for total := 8; total <= 40; total++ {
		for cur := 1; cur <= total; cur++ {
			items := PageWindow(cur, total)

			if items[0].Page != 1 || items[0].Ellipsis {
				t.Fatalf("total=%d cur=%d: window must start at page 1", total, cur)
			}
			last := items[len(items)-1]
			if last.Page != total || last.Ellipsis {
				t.Fatalf("total=%d cur=%d: window must end at page %d", total, cur, total)
			}

			active, ellipses := 0, 0
			for _, it := range items {
				if it.Ellipsis {
					ellipses++
					continue
				}
				if it.Active {
					active++
					if it.Page != cur {
						t.Fatalf("total=%d cur=%d: active page is %d", total, cur, it.Page)
					}
				}
			}
			if active != 1 {
				t.Fatalf("total=%d cur=%d: expected exactly one active page, got %d", total, cur, active)
			}
			if ellipses > 2 {
				t.Fatalf("total=%d cur=%d: expected at most two ellipses, got %d", total, cur, ellipses)
			}
		}
	}
}

func TestPaginatorClamp(t *testing.T) {
	p := NewPaginator("OurPagination", 3)

	if p.Prev() {
		t.Error("Expected Prev at page 1 to be a no-op")
	}
	if p.Current != 1 {
		t.Errorf("Expected page 1, got %d", p.Current)
	}

	p.Goto(3)
	if p.Next() {
		t.Error("Expected Next at last page to be a no-op")
	}
	if p.Current != 3 {
		t.Errorf("Expected page 3, got %d", p.Current)
	}

	p.Goto(99)
	if p.Current != 3 {
		t.Errorf("Expected Goto clamped to 3, got %d", p.Current)
	}
	p.Goto(-1)
	if p.Current != 1 {
		t.Errorf("Expected Goto clamped to 1, got %d", p.Current)
	}
}

func TestPaginatorItemIDs(t *testing.T) {
	p := NewPaginator("OurPagination", 1)
	if p.ItemID(1) != "OurPagination-1" {
		t.Errorf("Unexpected item id: %q", p.ItemID(1))
	}
	if len(p.Window()) != 1 {
		t.Errorf("Expected a single page button for one page, got %d", len(p.Window()))
	}
}

func TestPaginatorSetTotalClampsCurrent(t *testing.T) {
	p := NewPaginator("JobsPagination", 10)
	p.Goto(10)
	p.SetTotal(4)
	if p.Current != 4 {
		t.Errorf("Expected current clamped to 4, got %d", p.Current)
	}
	if p.APIPage() != 3 {
		t.Errorf("Expected zero-based API page 3, got %d", p.APIPage())
	}
}
