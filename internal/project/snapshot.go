package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creativehubiion/roadforge/internal/model"
	"github.com/creativehubiion/roadforge/internal/placement"
)

// PieceRecord is one placed piece's persisted state: its type and final
// transform. Generation parameters are deliberately not recorded;
// restoring a snapshot and regenerating from a seed are independent
// paths that never merge.
type PieceRecord struct {
	TypeID string          `json:"type_id"`
	World  model.Transform `json:"world"`
}

// Snapshot captures a generated network's transforms for later restore.
type Snapshot struct {
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"created_at"`
	Pieces    []PieceRecord `json:"pieces"`
}

// Capture records the committed pieces of an engine in commit order.
func Capture(name string, pieces []*model.PlacedPiece) Snapshot {
	snap := Snapshot{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Pieces:    make([]PieceRecord, 0, len(pieces)),
	}
	for _, p := range pieces {
		snap.Pieces = append(snap.Pieces, PieceRecord{TypeID: p.TypeID, World: p.World})
	}
	return snap
}

// SaveSnapshot writes a snapshot to path as JSON.
func SaveSnapshot(path string, snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSnapshot reads a snapshot from path.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Restore replays a snapshot through the engine. All generated state is
// cleared first, so restored and generated geometry can never mix.
// Pieces whose type is unavailable are skipped; the returned count is
// the number actually restored.
func Restore(e *placement.Engine, snap Snapshot) (int, error) {
	e.Reset()
	restored := 0
	var firstErr error
	for _, rec := range snap.Pieces {
		if _, err := e.Place(rec.TypeID, rec.World); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		restored++
	}
	return restored, firstErr
}
