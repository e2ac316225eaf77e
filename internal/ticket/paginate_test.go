package ticket

import "testing"

func TestPaginateSinglePage(t *testing.T) {
	for _, h := range []float64{0, 1, 150, 299.9, 300} {
		pages := Paginate(h, 300)
		if len(pages) != 1 {
			t.Fatalf("content %v: %d pages, want 1", h, len(pages))
		}
		if pages[0].Index != 0 || pages[0].YOffset != 0 {
			t.Fatalf("content %v: first page = %+v", h, pages[0])
		}
	}
}

func TestPaginateJustOverOnePage(t *testing.T) {
	pages := Paginate(301, 300)
	if len(pages) != 2 {
		t.Fatalf("%d pages, want 2", len(pages))
	}
	if pages[1].Index != 1 || pages[1].YOffset != -300 {
		t.Fatalf("second page = %+v", pages[1])
	}
}

func TestPaginateExactMultipleHasNoTrailingBlank(t *testing.T) {
	pages := Paginate(600, 300)
	if len(pages) != 2 {
		t.Fatalf("%d pages, want 2", len(pages))
	}
	pages = Paginate(900, 300)
	if len(pages) != 3 {
		t.Fatalf("%d pages, want 3", len(pages))
	}
}

func TestPaginateOffsetsDescendByPageHeight(t *testing.T) {
	pages := Paginate(1000, 300)
	if len(pages) != 4 {
		t.Fatalf("%d pages, want 4", len(pages))
	}
	for i, p := range pages {
		if p.Index != i {
			t.Fatalf("page %d has index %d", i, p.Index)
		}
		if want := -float64(i) * 300; p.YOffset != want {
			t.Fatalf("page %d offset = %v, want %v", i, p.YOffset, want)
		}
	}
}

func TestPaginateDegeneratePageHeight(t *testing.T) {
	for _, h := range []float64{0, -10} {
		pages := Paginate(500, h)
		if len(pages) != 1 || pages[0].YOffset != 0 {
			t.Fatalf("page height %v: %+v", h, pages)
		}
	}
}
