package unitview

import (
	"encoding/json"

	"github.com/google/renameio/v2"
)

// WriteSnapshot writes a listing snapshot to path as indented JSON. The
// write is atomic: readers never observe a partially written file. This is
// a point-in-time export for inspection or diffing; nothing in this package
// ever reads it back.
func WriteSnapshot(path string, units []ServiceInfo) error {
	data, err := json.MarshalIndent(units, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(path, append(data, '\n'), 0o644)
}
