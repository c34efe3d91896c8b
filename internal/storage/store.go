package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/rs/xid"

	"github.com/KSPSnark/SteeringTweaker/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Preset    string    `json:"preset"`
	Timestamp time.Time `json:"timestamp"`
	Dt        float64   `json:"dt"`
	Duration  float64   `json:"duration"`
	Actuators []string  `json:"actuators"`
	Steps     int       `json:"steps"`
	Skipped   int       `json:"skipped"`
}

func (s *Store) Save(preset string, cfg sim.Config, result *sim.Result) (string, error) {
	runID := xid.New().String()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    preset,
		Timestamp: time.Now(),
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		Steps:     result.StepsTaken,
	}
	for _, a := range result.Actuators {
		meta.Actuators = append(meta.Actuators, a.Name)
		meta.Skipped += a.Skipped
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeSeries(filepath.Join(runDir, "series.csv"), result); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) LoadMetadata(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads a run's recorded times, speeds, and per-actuator
// percent columns back from series.csv.
func (s *Store) LoadSeries(runID string) (times, speeds []float64, percents map[string][]float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, nil, fmt.Errorf("storage: empty series for run %s", runID)
	}

	header := records[0]
	if len(header) < 3 {
		return nil, nil, nil, fmt.Errorf("storage: malformed series header for run %s", runID)
	}
	percents = make(map[string][]float64)
	for _, row := range records[1:] {
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		times = append(times, t)
		speeds = append(speeds, v)
		for col := 3; col < len(row); col++ {
			p, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				return nil, nil, nil, err
			}
			name := header[col]
			percents[name] = append(percents[name], p)
		}
	}
	return times, speeds, percents, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSeries(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"time", "speed", "situation"}
	for _, a := range result.Actuators {
		header = append(header, a.Name)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range result.Times {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 4, 64),
			strconv.FormatFloat(result.Speeds[i], 'f', 4, 64),
			result.Situations[i],
		}
		for _, a := range result.Actuators {
			row = append(row, strconv.FormatFloat(a.Percent[i], 'f', 2, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
