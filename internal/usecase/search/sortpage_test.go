package search

import (
	"testing"

	"github.com/lensbook/searchd/internal/domain/search/request"
	"github.com/lensbook/searchd/internal/domain/search/result"
)

func fixtureHits() []result.Hit {
	listings := fixtureListings()
	hits := make([]result.Hit, 0, 4)
	scores := map[string]float64{
		"svc-wed":   3,
		"svc-port":  2,
		"svc-drone": 1,
		"svc-dj":    1,
	}
	for i := range listings {
		id := listings[i].Service().ID()
		if id == "svc-draft" {
			continue
		}
		hits = append(hits, result.NewHit(listings[i], scores[id]))
	}
	return hits
}

func TestSortHits_TieBreakByID(t *testing.T) {
	hits := fixtureHits()
	sortHits(hits, request.SortRelevance, request.OrderDesc)

	// svc-drone and svc-dj share the score; id ascending breaks the tie.
	got := hitIDs(hits)
	want := []string{"svc-wed", "svc-port", "svc-dj", "svc-drone"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSortHits_Rating(t *testing.T) {
	hits := fixtureHits()
	sortHits(hits, request.SortRating, request.OrderDesc)

	got := hitIDs(hits)
	want := []string{"svc-dj", "svc-wed", "svc-port", "svc-drone"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPaginate_ExactBoundary(t *testing.T) {
	hits := fixtureHits()

	slice, meta := paginate(hits, 2, 2)
	if len(slice) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(slice))
	}
	if meta.totalPages != 2 || meta.hasNext || !meta.hasPrevious {
		t.Errorf("unexpected meta: %+v", meta)
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	hits := fixtureHits()

	slice, meta := paginate(hits, 5, 2)
	if len(slice) != 0 {
		t.Fatalf("expected empty slice, got %d", len(slice))
	}
	if meta.totalCount != 4 || meta.totalPages != 2 {
		t.Errorf("unexpected meta: %+v", meta)
	}
	if meta.hasNext {
		t.Error("out-of-range page must not report a next page")
	}
}

func TestPaginate_Empty(t *testing.T) {
	slice, meta := paginate(nil, 1, 20)
	if len(slice) != 0 || meta.totalCount != 0 || meta.totalPages != 0 {
		t.Errorf("unexpected: slice=%v meta=%+v", slice, meta)
	}
	if meta.hasPrevious {
		t.Error("first page must not report a previous page")
	}
}

func TestPaginate_EmptyBeyondFirstPage(t *testing.T) {
	// hasPreviousPage depends only on the page number, even when nothing
	// matched at all.
	slice, meta := paginate(nil, 3, 20)
	if len(slice) != 0 || meta.totalCount != 0 {
		t.Errorf("unexpected: slice=%v meta=%+v", slice, meta)
	}
	if !meta.hasPrevious {
		t.Error("page 3 must report a previous page on an empty result set")
	}
	if meta.hasNext {
		t.Error("empty result set must not report a next page")
	}
}
