package telemetry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store archives runs in a SQLite database.
type Store struct {
	conn  *sqlx.DB
	runID string
}

// RunRow is one archived run.
type RunRow struct {
	ID         string `db:"id"`
	Seed       int64  `db:"seed"`
	StartedAt  string `db:"started_at"`
	FinishedAt string `db:"finished_at"`
	Days       int    `db:"days"`
	ConfigYAML string `db:"config_yaml"`
}

// OpenStore opens or creates an archive at the given path.
func OpenStore(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL DEFAULT '',
		days INTEGER NOT NULL DEFAULT 0,
		config_yaml TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS days (
		run_id TEXT NOT NULL,
		day_index INTEGER NOT NULL,
		year INTEGER NOT NULL,
		day INTEGER NOT NULL,
		season INTEGER NOT NULL,
		boisei_cal_mean REAL NOT NULL,
		ergaster_cal_mean REAL NOT NULL,
		boisei_starving INTEGER NOT NULL,
		ergaster_starving INTEGER NOT NULL,
		meat_minutes INTEGER NOT NULL,
		plant_minutes INTEGER NOT NULL,
		carcasses INTEGER NOT NULL,
		plant_abundance REAL NOT NULL,
		PRIMARY KEY (run_id, day_index)
	);

	CREATE TABLE IF NOT EXISTS agents (
		run_id TEXT NOT NULL,
		agent_id INTEGER NOT NULL,
		label TEXT NOT NULL,
		species TEXT NOT NULL,
		options TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		nest_x INTEGER NOT NULL,
		nest_y INTEGER NOT NULL,
		days INTEGER NOT NULL,
		avg_daily_calories REAL NOT NULL,
		starving INTEGER NOT NULL,
		plant_calories REAL NOT NULL,
		carcass_calories REAL NOT NULL,
		root_calories REAL NOT NULL,
		eating_minutes INTEGER NOT NULL,
		travel_minutes INTEGER NOT NULL,
		PRIMARY KEY (run_id, agent_id)
	);

	CREATE INDEX IF NOT EXISTS idx_days_run ON days(run_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// BeginRun registers a new run and returns its identifier.
func (s *Store) BeginRun(seed int64, configYAML []byte, started time.Time) (string, error) {
	id := uuid.NewString()
	_, err := s.conn.Exec(
		"INSERT INTO runs (id, seed, started_at, config_yaml) VALUES (?, ?, ?, ?)",
		id, seed, started.UTC().Format(time.RFC3339), string(configYAML),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	s.runID = id
	return id, nil
}

// RunID returns the identifier of the current run.
func (s *Store) RunID() string {
	return s.runID
}

// RecordDay appends one day of the current run.
func (s *Store) RecordDay(st DayStats) error {
	_, err := s.conn.Exec(`INSERT INTO days
		(run_id, day_index, year, day, season, boisei_cal_mean, ergaster_cal_mean,
		 boisei_starving, ergaster_starving, meat_minutes, plant_minutes, carcasses, plant_abundance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.runID, st.DayIndex, st.Year, st.Day, st.Season, st.BoiseiCalMean, st.ErgasterCalMean,
		st.BoiseiStarving, st.ErgasterStarving, st.MeatMinutes, st.PlantMinutes,
		st.CarcassesSmall+st.CarcassesMedium+st.CarcassesLarge, st.PlantAbundance,
	)
	if err != nil {
		return fmt.Errorf("insert day %d: %w", st.DayIndex, err)
	}
	return nil
}

// FinishRun stores the final agent summaries and closes the run record.
func (s *Store) FinishRun(days int, agents []AgentRecord, finished time.Time) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO agents
		(run_id, agent_id, label, species, options, x, y, nest_x, nest_y, days,
		 avg_daily_calories, starving, plant_calories, carcass_calories, root_calories,
		 eating_minutes, travel_minutes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range agents {
		starving := 0
		if a.Starving {
			starving = 1
		}
		_, err := stmt.Exec(
			s.runID, a.ID, a.Label, a.Species, a.Options, a.X, a.Y, a.NestX, a.NestY, a.Days,
			a.AvgDailyCalories, starving, a.PlantCalories, a.CarcassCalories, a.RootCalories,
			a.EatingMinutes, a.TravelMinutes,
		)
		if err != nil {
			return fmt.Errorf("insert agent %d: %w", a.ID, err)
		}
	}

	if _, err := tx.Exec("UPDATE runs SET finished_at = ?, days = ? WHERE id = ?",
		finished.UTC().Format(time.RFC3339), days, s.runID); err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	return tx.Commit()
}

// Runs returns all archived runs, oldest first.
func (s *Store) Runs() ([]RunRow, error) {
	var runs []RunRow
	err := s.conn.Select(&runs, "SELECT id, seed, started_at, finished_at, days, config_yaml FROM runs ORDER BY started_at, id")
	return runs, err
}

// AgentRows returns the archived agent summaries of a run.
func (s *Store) AgentRows(runID string) ([]AgentRecord, error) {
	var rows []AgentRecord
	err := s.conn.Select(&rows, `SELECT agent_id, label, species, options, x, y, nest_x, nest_y, days,
		avg_daily_calories, starving, plant_calories, carcass_calories, root_calories,
		eating_minutes, travel_minutes FROM agents WHERE run_id = ? ORDER BY agent_id`, runID)
	return rows, err
}

// DayCount returns how many days of a run are archived.
func (s *Store) DayCount(runID string) (int, error) {
	var n int
	err := s.conn.Get(&n, "SELECT COUNT(*) FROM days WHERE run_id = ?", runID)
	return n, err
}
