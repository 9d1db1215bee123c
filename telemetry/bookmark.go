package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkStarvationOnset    BookmarkType = "starvation_onset"
	BookmarkStarvationRecovery BookmarkType = "starvation_recovery"
	BookmarkMeatSurge          BookmarkType = "meat_surge"
	BookmarkCarcassGlut        BookmarkType = "carcass_glut"
	BookmarkPlantCrash         BookmarkType = "plant_crash"
)

// Bookmark marks a notable day in a run.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	DayIndex    int          `csv:"day_index"`
	Species     string       `csv:"species"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"day_index", b.DayIndex,
		"species", b.Species,
		"description", b.Description,
	)
}

// BookmarkDetector watches daily stats for notable changes.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []DayStats
	historySize int
	historyIdx  int
	historyFull bool

	wasStarving [2]bool
	plantPeak   float64
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]DayStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest day and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats DayStats) []Bookmark {
	var bookmarks []Bookmark

	bookmarks = append(bookmarks, bd.checkStarvation(stats)...)
	if b := bd.checkMeatSurge(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkCarcassGlut(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkPlantCrash(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	if stats.PlantAbundance > bd.plantPeak {
		bd.plantPeak = stats.PlantAbundance
	}
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats DayStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []DayStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkStarvation(stats DayStats) []Bookmark {
	var out []Bookmark
	species := [2]struct {
		name     string
		starving int
	}{
		{"boisei", stats.BoiseiStarving},
		{"ergaster", stats.ErgasterStarving},
	}
	for i, s := range species {
		now := s.starving > 0
		switch {
		case now && !bd.wasStarving[i]:
			out = append(out, Bookmark{
				Type:        BookmarkStarvationOnset,
				DayIndex:    stats.DayIndex,
				Species:     s.name,
				Description: fmt.Sprintf("%d %s foragers starving", s.starving, s.name),
			})
		case !now && bd.wasStarving[i]:
			out = append(out, Bookmark{
				Type:        BookmarkStarvationRecovery,
				DayIndex:    stats.DayIndex,
				Species:     s.name,
				Description: fmt.Sprintf("no %s foragers starving", s.name),
			})
		}
		bd.wasStarving[i] = now
	}
	return out
}

func (bd *BookmarkDetector) checkMeatSurge(stats DayStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.MeatMinutes
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	cur := float64(stats.MeatMinutes)
	if cur > avg*2.0 && stats.MeatMinutes >= 60 {
		return &Bookmark{
			Type:        BookmarkMeatSurge,
			DayIndex:    stats.DayIndex,
			Description: fmt.Sprintf("%d meat minutes is %.1fx average (%.0f)", stats.MeatMinutes, cur/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkCarcassGlut(stats DayStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	count := func(s DayStats) int { return s.CarcassesSmall + s.CarcassesMedium + s.CarcassesLarge }
	var total int
	for _, h := range history {
		total += count(h)
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	cur := count(stats)
	if float64(cur) > avg*2.0 && cur >= 5 {
		return &Bookmark{
			Type:        BookmarkCarcassGlut,
			DayIndex:    stats.DayIndex,
			Description: fmt.Sprintf("%d carcasses on the ground, average %.1f", cur, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkPlantCrash(stats DayStats) *Bookmark {
	if bd.plantPeak == 0 {
		return nil
	}

	drop := 1.0 - stats.PlantAbundance/bd.plantPeak
	if drop > 0.30 {
		// Reset peak after crash
		oldPeak := bd.plantPeak
		bd.plantPeak = stats.PlantAbundance
		return &Bookmark{
			Type:        BookmarkPlantCrash,
			DayIndex:    stats.DayIndex,
			Description: fmt.Sprintf("Plant abundance fell %.0f%% from peak %.0f to %.0f", drop*100, oldPeak, stats.PlantAbundance),
		}
	}
	return nil
}
