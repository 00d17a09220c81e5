package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/store"
)

// ExportSnapshot writes the snapshot to path in the persisted JSON form,
// indented for hand editing. The file round-trips through the same codec
// the store uses.
func ExportSnapshot(s domain.Snapshot, path string) error {
	data, err := store.EncodeSnapshot(s)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	var pretty map[string]any
	if err := json.Unmarshal(data, &pretty); err != nil {
		return fmt.Errorf("reformatting snapshot: %w", err)
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("indenting snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// ImportSnapshotFile reads a full snapshot export back into memory.
// Used with SET_STATE to replace the whole state wholesale.
func ImportSnapshotFile(path string) (domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Snapshot{}, err
	}
	s, err := store.DecodeSnapshot(data)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("reading snapshot file: %w", err)
	}
	return s, nil
}
