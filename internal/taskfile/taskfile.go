// Package taskfile is the input-collection layer: it reads batches of raw
// task records from TOML or JSON files for the CLI and TUI front ends and
// can watch a file for changes. Parsing malformed files is this layer's
// concern; field-level validation belongs to the engine pipeline.
package taskfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"triage/internal/task"
)

// ErrUnsupportedFormat indicates a task file extension the loader does not
// understand.
var ErrUnsupportedFormat = errors.New("unsupported task file format")

// Load reads raw task records from the file at path. The format follows the
// extension: .toml files hold [[tasks]] tables, .json files hold either a
// bare array of records or an object with a "tasks" key.
func Load(path string) ([]task.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOML(data)
	case ".json":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// tomlRecord mirrors one [[tasks]] table. The id and dependency entries stay
// dynamically typed so integer and string identifiers both survive with
// their original form.
type tomlRecord struct {
	ID             any      `toml:"id"`
	Title          string   `toml:"title"`
	DueDate        string   `toml:"due_date"`
	EstimatedHours *float64 `toml:"estimated_hours"`
	Importance     *float64 `toml:"importance"`
	Dependencies   []any    `toml:"dependencies"`
}

type tomlFile struct {
	Tasks []tomlRecord `toml:"tasks"`
}

func parseTOML(data []byte) ([]task.Record, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing task file: %w", err)
	}

	records := make([]task.Record, 0, len(file.Tasks))
	for i, tr := range file.Tasks {
		id, err := task.FromAny(tr.ID)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		deps := make([]task.ID, 0, len(tr.Dependencies))
		for j, raw := range tr.Dependencies {
			dep, err := task.FromAny(raw)
			if err != nil {
				return nil, fmt.Errorf("tasks[%d].dependencies[%d]: %w", i, j, err)
			}
			deps = append(deps, dep)
		}
		if len(deps) == 0 {
			deps = nil
		}
		records = append(records, task.Record{
			ID:             id,
			Title:          tr.Title,
			DueDate:        tr.DueDate,
			EstimatedHours: tr.EstimatedHours,
			Importance:     tr.Importance,
			Dependencies:   deps,
		})
	}
	return records, nil
}

func parseJSON(data []byte) ([]task.Record, error) {
	// Accept both the wire envelope {"tasks": [...]} and a bare array.
	var envelope struct {
		Tasks []task.Record `json:"tasks"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Tasks != nil {
		return envelope.Tasks, nil
	}

	var records []task.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing task file: %w", err)
	}
	return records, nil
}
