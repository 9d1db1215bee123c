package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/hominids/config"
)

// OutputManager writes run results as CSV files.
type OutputManager struct {
	dir           string
	dailyFile     *os.File
	bookmarksFile *os.File
	carcassFile   *os.File

	// Track if headers have been written
	dailyHeaderWritten    bool
	bookmarkHeaderWritten bool
	carcassHeaderWritten  bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "daily.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating daily.csv: %w", err)
	}
	bf, err := os.Create(filepath.Join(dir, "bookmarks.csv"))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating bookmarks.csv: %w", err)
	}
	cf, err := os.Create(filepath.Join(dir, "carcasses.csv"))
	if err != nil {
		f.Close()
		bf.Close()
		return nil, fmt.Errorf("creating carcasses.csv: %w", err)
	}
	return &OutputManager{dir: dir, dailyFile: f, bookmarksFile: bf, carcassFile: cf}, nil
}

// WriteConfig saves the run configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteDay appends a record to daily.csv.
func (om *OutputManager) WriteDay(stats DayStats) error {
	if om == nil {
		return nil
	}

	records := []DayStats{stats}
	if !om.dailyHeaderWritten {
		if err := gocsv.Marshal(records, om.dailyFile); err != nil {
			return fmt.Errorf("writing daily stats: %w", err)
		}
		om.dailyHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.dailyFile); err != nil {
			return fmt.Errorf("writing daily stats: %w", err)
		}
	}
	return nil
}

// WriteBookmark appends a bookmark to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}

	records := []Bookmark{b}
	if !om.bookmarkHeaderWritten {
		if err := gocsv.Marshal(records, om.bookmarksFile); err != nil {
			return fmt.Errorf("writing bookmark: %w", err)
		}
		om.bookmarkHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.bookmarksFile); err != nil {
		return fmt.Errorf("writing bookmark: %w", err)
	}
	return nil
}

// WriteCarcasses appends one midnight roster to carcasses.csv.
func (om *OutputManager) WriteCarcasses(rows []CarcassRecord) error {
	if om == nil || len(rows) == 0 {
		return nil
	}
	if !om.carcassHeaderWritten {
		if err := gocsv.Marshal(&rows, om.carcassFile); err != nil {
			return fmt.Errorf("writing carcass roster: %w", err)
		}
		om.carcassHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(&rows, om.carcassFile); err != nil {
		return fmt.Errorf("writing carcass roster: %w", err)
	}
	return nil
}

// WriteAgents writes agents.csv.
func (om *OutputManager) WriteAgents(rows []AgentRecord) error {
	return om.writeTable("agents.csv", &rows)
}

// WriteSpatial writes spatial.csv.
func (om *OutputManager) WriteSpatial(rows []CellRecord) error {
	return om.writeTable("spatial.csv", &rows)
}

// WriteSeasons writes seasons.csv.
func (om *OutputManager) WriteSeasons(rows []SeasonSummary) error {
	return om.writeTable("seasons.csv", &rows)
}

func (om *OutputManager) writeTable(name string, rows any) error {
	if om == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(om.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := gocsv.MarshalFile(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{om.dailyFile, om.bookmarksFile, om.carcassFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
