package query

import "testing"

func TestPageCount(t *testing.T) {
	p := NewPaginator(6)
	cases := []struct {
		total, want int
	}{
		{0, 1}, {1, 1}, {6, 1}, {7, 2}, {12, 2}, {13, 3}, {20, 4},
	}
	for _, tc := range cases {
		if got := p.PageCount(tc.total); got != tc.want {
			t.Fatalf("PageCount(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestNavigationStaysInRange(t *testing.T) {
	p := NewPaginator(6)
	const total = 20 // 4 pages

	p.Prev()
	if p.Current() != 1 {
		t.Fatalf("Prev below 1: page %d", p.Current())
	}
	for i := 0; i < 10; i++ {
		p.Next(total)
	}
	if p.Current() != 4 {
		t.Fatalf("Next past last page: page %d", p.Current())
	}
	p.Goto(0, total)
	p.Goto(5, total)
	if p.Current() != 4 {
		t.Fatalf("out-of-range Goto must be a no-op: page %d", p.Current())
	}
	p.Goto(2, total)
	if p.Current() != 2 {
		t.Fatalf("Goto(2) failed: page %d", p.Current())
	}
}

func TestClampAfterFilterShrink(t *testing.T) {
	p := NewPaginator(6)
	p.Goto(4, 20)

	// The result set shrinks to 3 records; page 4 no longer exists.
	p.Clamp(3)
	if p.Current() != 1 {
		t.Fatalf("page after clamp = %d, want 1", p.Current())
	}
}

func TestPageSliceCoversAllRecordsExactlyOnce(t *testing.T) {
	records := make([]int, 20)
	for i := range records {
		records[i] = i
	}

	p := NewPaginator(6)
	seen := map[int]bool{}
	for page := 1; page <= p.PageCount(len(records)); page++ {
		chunk := PageSlice(records, p.PageSize, page)
		if page < p.PageCount(len(records)) && len(chunk) != 6 {
			t.Fatalf("page %d has %d records, want 6", page, len(chunk))
		}
		for _, v := range chunk {
			if seen[v] {
				t.Fatalf("record %d appears twice", v)
			}
			seen[v] = true
		}
	}
	if len(seen) != len(records) {
		t.Fatalf("pages covered %d records, want %d", len(seen), len(records))
	}
}

func TestPageSliceBounds(t *testing.T) {
	records := []int{1, 2, 3}
	if got := PageSlice(records, 6, 2); got != nil {
		t.Fatalf("past-the-end page should be nil, got %v", got)
	}
	if got := PageSlice(records, 0, 1); got != nil {
		t.Fatalf("zero page size should be nil, got %v", got)
	}
	if got := PageSlice(records, 2, 2); len(got) != 1 || got[0] != 3 {
		t.Fatalf("last partial page: %v", got)
	}
}
