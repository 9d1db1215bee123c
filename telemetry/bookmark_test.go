package telemetry

import "testing"

func hasBookmark(bms []Bookmark, typ BookmarkType, species string) bool {
	for _, bm := range bms {
		if bm.Type == typ && bm.Species == species {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_Starvation(t *testing.T) {
	bd := NewBookmarkDetector(10)

	if got := bd.Check(DayStats{DayIndex: 1}); len(got) != 0 {
		t.Fatalf("quiet day produced %v", got)
	}
	got := bd.Check(DayStats{DayIndex: 2, ErgasterStarving: 3})
	if !hasBookmark(got, BookmarkStarvationOnset, "ergaster") {
		t.Errorf("expected ergaster starvation onset, got %v", got)
	}
	if hasBookmark(got, BookmarkStarvationOnset, "boisei") {
		t.Error("boisei did not start starving")
	}

	// Still starving: no repeat.
	got = bd.Check(DayStats{DayIndex: 3, ErgasterStarving: 5})
	if hasBookmark(got, BookmarkStarvationOnset, "ergaster") {
		t.Error("onset reported twice")
	}

	got = bd.Check(DayStats{DayIndex: 4})
	if !hasBookmark(got, BookmarkStarvationRecovery, "ergaster") {
		t.Errorf("expected recovery, got %v", got)
	}
}

func TestBookmarkDetector_MeatSurge(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 1; i <= 5; i++ {
		bd.Check(DayStats{DayIndex: i, MeatMinutes: 40})
	}

	got := bd.Check(DayStats{DayIndex: 6, MeatMinutes: 200})
	if !hasBookmark(got, BookmarkMeatSurge, "") {
		t.Errorf("expected meat surge, got %v", got)
	}

	got = bd.Check(DayStats{DayIndex: 7, MeatMinutes: 50})
	if hasBookmark(got, BookmarkMeatSurge, "") {
		t.Error("ordinary day flagged as surge")
	}
}

func TestBookmarkDetector_CarcassGlut(t *testing.T) {
	bd := NewBookmarkDetector(5)
	for i := 1; i <= 3; i++ {
		bd.Check(DayStats{DayIndex: i, CarcassesSmall: 2})
	}
	got := bd.Check(DayStats{DayIndex: 4, CarcassesSmall: 4, CarcassesMedium: 2})
	if !hasBookmark(got, BookmarkCarcassGlut, "") {
		t.Errorf("expected carcass glut, got %v", got)
	}
}

func TestBookmarkDetector_PlantCrash(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(DayStats{DayIndex: 1, PlantAbundance: 1000})
	bd.Check(DayStats{DayIndex: 2, PlantAbundance: 900})

	got := bd.Check(DayStats{DayIndex: 3, PlantAbundance: 600})
	if !hasBookmark(got, BookmarkPlantCrash, "") {
		t.Fatalf("expected plant crash, got %v", got)
	}

	// Peak was reset to 600.
	got = bd.Check(DayStats{DayIndex: 4, PlantAbundance: 500})
	if hasBookmark(got, BookmarkPlantCrash, "") {
		t.Error("crash reported again without a new peak")
	}
}
