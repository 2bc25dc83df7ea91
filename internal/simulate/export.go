package simulate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/drawpoker/poker"
)

type categoryStats struct {
	Dealt     int     `json:"dealt"`
	Won       int     `json:"won"`
	Frequency float64 `json:"frequency"`
	WinShare  float64 `json:"win_share"`
}

type reportFile struct {
	Seed           int64                    `json:"seed"`
	Games          int                      `json:"games"`
	Hands          int                      `json:"hands"`
	Ties           int                      `json:"ties"`
	ElapsedMs      int64                    `json:"elapsed_ms"`
	AverageSwapped float64                  `json:"average_swapped"`
	SeatWins       []int                    `json:"seat_wins"`
	Categories     map[string]categoryStats `json:"categories"`
}

// MarshalJSON encodes the report with categories keyed by name
// ("FULL_HOUSE") rather than by their numeric value.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportFile{
		Seed:           r.Seed,
		Games:          r.Games,
		Hands:          r.Hands,
		Ties:           r.Ties,
		ElapsedMs:      r.Elapsed.Milliseconds(),
		AverageSwapped: r.AverageSwapped(),
		SeatWins:       r.SeatWins,
		Categories:     make(map[string]categoryStats, len(poker.Categories())),
	}
	for _, c := range poker.Categories() {
		out.Categories[c.Constant()] = categoryStats{
			Dealt:     r.Dealt[c],
			Won:       r.Winning[c],
			Frequency: r.Frequency(c),
			WinShare:  r.WinShare(c),
		}
	}
	return json.Marshal(out)
}

// WriteReport writes the report as indented JSON. The file is written to a
// temporary file in the same directory and renamed into place, so readers
// never observe a partial report.
func WriteReport(filename string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename report: %w", err)
	}
	return nil
}
