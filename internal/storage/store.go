// Package storage persists completed runs to disk: one directory per run
// with a metadata.json and the full trajectory table as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/coulomb/internal/charge"
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
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Steps     int                `json:"steps"`
	Particles int                `json:"particles"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one run. All trajectories must have equal length (the
// recorder appends for every particle on every tick, so they do). The CSV
// layout is one row per tick: step, then x/y/z per particle.
func (s *Store) Save(presetName string, dt float64, trajectories [][]charge.Vec3, metrics map[string]float64) (string, error) {
	if len(trajectories) == 0 {
		return "", fmt.Errorf("storage: no trajectories to save")
	}

	runID := fmt.Sprintf("%s_%d", sanitize(presetName), time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	steps := len(trajectories[0])
	meta := RunMetadata{
		ID:        runID,
		Preset:    presetName,
		Timestamp: time.Now(),
		Dt:        dt,
		Steps:     steps,
		Particles: len(trajectories),
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"step"}
	for i := range trajectories {
		header = append(header,
			fmt.Sprintf("p%d_x", i), fmt.Sprintf("p%d_y", i), fmt.Sprintf("p%d_z", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for step := 0; step < steps; step++ {
		row := []string{strconv.Itoa(step)}
		for i := range trajectories {
			p := trajectories[i][step]
			row = append(row,
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
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

// LoadTrajectories reads back the per-particle position histories of a
// saved run, in the same shape the recorder produced them.
func (s *Store) LoadTrajectories(runID string) ([][]charge.Vec3, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectories.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 1 {
		return [][]charge.Vec3{}, nil
	}

	numParticles := (len(records[0]) - 1) / 3
	trajectories := make([][]charge.Vec3, numParticles)
	for i := range trajectories {
		trajectories[i] = make([]charge.Vec3, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) != 1+3*numParticles {
			return nil, fmt.Errorf("storage: malformed row with %d fields", len(record))
		}
		for i := 0; i < numParticles; i++ {
			x, err := strconv.ParseFloat(record[1+i*3], 64)
			if err != nil {
				return nil, err
			}
			y, err := strconv.ParseFloat(record[2+i*3], 64)
			if err != nil {
				return nil, err
			}
			z, err := strconv.ParseFloat(record[3+i*3], 64)
			if err != nil {
				return nil, err
			}
			trajectories[i] = append(trajectories[i], charge.Vec3{X: x, Y: y, Z: z})
		}
	}

	return trajectories, nil
}

func sanitize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
