// Package manifest writes and reads the ground-truth dot listing that
// accompanies a generated frame sequence. Detection pipelines score
// themselves against this file, so record order matches the population and
// the flags stay mutually consistent by construction.
package manifest

import (
	"encoding/json"
	"io"
	"os"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/field"
)

// Record is one dot's ground truth. The boolean flags are all derived from
// the dot's category; they are spelled out so downstream tooling does not
// need to know the category encoding.
type Record struct {
	ID             string  `json:"id"`
	InitialX       float64 `json:"initial_x"`
	InitialY       float64 `json:"initial_y"`
	IsTrueEvent    bool    `json:"is_true_event"`
	IsMoving       bool    `json:"is_moving"`
	IsStaticBright bool    `json:"is_static_bright"`
	IsPulsating    bool    `json:"is_pulsating"`
}

// Summary aggregates a manifest for console reporting.
type Summary struct {
	TrueEvents   int
	FalseEvents  int
	Moving       int
	StaticBright int
	Stationary   int
	Total        int
}

// Build converts a population to records in population order.
func Build(pop field.Population) []Record {
	records := make([]Record, len(pop))
	for i := range pop {
		d := &pop[i]
		records[i] = Record{
			ID:             d.ID.String(),
			InitialX:       d.InitialX,
			InitialY:       d.InitialY,
			IsTrueEvent:    d.TrueEvent(),
			IsMoving:       d.Category == field.Moving,
			IsStaticBright: d.Category == field.StaticBright,
			IsPulsating:    d.Pulsating(),
		}
	}
	return records
}

// Write emits the records as a two-space indented JSON array.
func Write(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, records)
}

// Load reads a manifest back, for inspection and tooling.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Summarize tallies true and false events the way the records spell them.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.IsTrueEvent {
			s.TrueEvents++
		} else {
			s.FalseEvents++
		}
		switch {
		case r.IsMoving:
			s.Moving++
		case r.IsStaticBright:
			s.StaticBright++
		default:
			s.Stationary++
		}
	}
	return s
}
