package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/jobslots/errors"
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/slots"
	"gopkg.in/yaml.v3"
)

// LoadSnapshot reads a console state from a YAML or JSON file. The format is
// picked by extension; anything other than .json is read as YAML.
func LoadSnapshot(path string) (*slots.ConsoleState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeStateInvalid, "state snapshot not found").
				WithDetail("path", path)
		}
		return nil, errors.StateInvalid(path, err)
	}

	state, err := DecodeSnapshot(data, formatOf(path))
	if err != nil {
		return nil, errors.StateInvalid(path, err)
	}
	return state, nil
}

// DecodeSnapshot decodes a console state in the given format ("yaml" or
// "json"). An empty document is an empty state.
func DecodeSnapshot(data []byte, format string) (*slots.ConsoleState, error) {
	var state slots.ConsoleState
	if len(strings.TrimSpace(string(data))) > 0 {
		var err error
		if format == "json" {
			err = json.Unmarshal(data, &state)
		} else {
			err = yaml.Unmarshal(data, &state)
		}
		if err != nil {
			return nil, err
		}
	}
	if state.Jobs == nil {
		state.Jobs = make(map[catalog.JobID]slots.SlotCount)
	}
	return &state, nil
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}
