package telemetry

import (
	"path/filepath"
	"testing"
	"time"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := OpenStore(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	id, err := s.BeginRun(42, []byte("world:\n  days: 2\n"), started)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" || s.RunID() != id {
		t.Fatalf("run id = %q, RunID() = %q", id, s.RunID())
	}

	for i := 1; i <= 2; i++ {
		if err := s.RecordDay(DayStats{DayIndex: i, Year: 1, Day: i, Season: 1, CarcassesSmall: 2}); err != nil {
			t.Fatal(err)
		}
	}
	agents := []AgentRecord{
		{ID: 1, Label: "B1", Species: "boisei", Options: "i", NestX: -1, NestY: -1, Days: 2, AvgDailyCalories: 2100},
		{ID: 2, Label: "E2", Species: "ergaster", Options: "gdmc", NestX: 3, NestY: 4, Days: 2, Starving: true},
	}
	if err := s.FinishRun(2, agents, started.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}

	runs, err := s.Runs()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Seed != 42 || r.Days != 2 || r.FinishedAt == "" {
		t.Errorf("run = %+v", r)
	}

	n, err := s.DayCount(id)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("DayCount = %d, want 2", n)
	}

	rows, err := s.AgentRows(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d agent rows, want 2", len(rows))
	}
	if rows[0].Label != "B1" || rows[0].AvgDailyCalories != 2100 || rows[0].Starving {
		t.Errorf("first agent = %+v", rows[0])
	}
	if rows[1].NestX != 3 || !rows[1].Starving || rows[1].Options != "gdmc" {
		t.Errorf("second agent = %+v", rows[1])
	}
}

func TestStoreRejectsDuplicateDay(t *testing.T) {
	s, err := OpenStore(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.BeginRun(1, nil, time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordDay(DayStats{DayIndex: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordDay(DayStats{DayIndex: 1}); err == nil {
		t.Error("second insert of the same day succeeded")
	}
}
