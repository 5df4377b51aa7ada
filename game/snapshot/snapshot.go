// Package snapshot archives per-map building state at tick boundaries so
// historical queries (including collapsed buildings long since superseded)
// can be served without replaying ticks.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"citytick/models"
)

type BuildingState struct {
	ID            uint    `json:"id"`
	TileID        uint    `json:"tile_id"`
	CoordX        int     `json:"x"`
	CoordY        int     `json:"y"`
	CompanyID     *uint   `json:"company_id,omitempty"`
	TypeID        uint    `json:"type_id"`
	DamagePercent float64 `json:"damage_percent"`
	IsOnFire      bool    `json:"is_on_fire"`
	IsCollapsed   bool    `json:"is_collapsed"`
	HasSprinklers bool    `json:"has_sprinklers"`
	Profit        int     `json:"profit"`
	Value         int     `json:"value"`
}

type MapSnapshot struct {
	MapID     uint            `json:"map_id"`
	TickID    uint            `json:"tick_id"`
	TakenAt   string          `json:"taken_at"`
	Buildings []BuildingState `json:"buildings"`
}

type ArchiveMeta struct {
	MapID     uint   `json:"map_id"`
	LastTick  uint   `json:"last_tick"`
	Snapshot  string `json:"snapshot"`
	CreatedAt string `json:"created_at"`
}

// Archiver writes zstd-compressed map snapshots under
// Dir/map_<id>/tick_<n>.json.zst, every Every ticks. Every <= 0 disables
// archiving entirely.
type Archiver struct {
	Dir   string
	Every int
}

func (a *Archiver) Enabled() bool {
	return a != nil && a.Dir != "" && a.Every > 0
}

func (a *Archiver) Due(tickID uint) bool {
	return a.Enabled() && tickID%uint(a.Every) == 0
}

// FromBuildings captures the archive-relevant fields of a map's buildings.
func FromBuildings(mapID, tickID uint, buildings []*models.Building) MapSnapshot {
	snap := MapSnapshot{
		MapID:     mapID,
		TickID:    tickID,
		TakenAt:   time.Now().UTC().Format(time.RFC3339Nano),
		Buildings: make([]BuildingState, 0, len(buildings)),
	}
	for _, b := range buildings {
		snap.Buildings = append(snap.Buildings, BuildingState{
			ID:            b.ID,
			TileID:        b.TileID,
			CoordX:        b.CoordX,
			CoordY:        b.CoordY,
			CompanyID:     b.CompanyID,
			TypeID:        b.BuildingTypeID,
			DamagePercent: b.DamagePercent,
			IsOnFire:      b.IsOnFire,
			IsCollapsed:   b.IsCollapsed,
			HasSprinklers: b.HasSprinklers,
			Profit:        b.CalculatedProfit,
			Value:         b.CalculatedValue,
		})
	}
	return snap
}

// Archive writes one compressed snapshot plus a plain-JSON meta file next
// to it, and returns the snapshot path.
func (a *Archiver) Archive(snap MapSnapshot) (string, error) {
	mapDir := filepath.Join(a.Dir, fmt.Sprintf("map_%d", snap.MapID))
	if err := os.MkdirAll(mapDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(mapDir, fmt.Sprintf("tick_%d.json.zst", snap.TickID))
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	enc, err := zstd.NewWriter(out)
	if err != nil {
		return "", err
	}
	if err := json.NewEncoder(enc).Encode(snap); err != nil {
		enc.Close()
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	meta := ArchiveMeta{
		MapID:     snap.MapID,
		LastTick:  snap.TickID,
		Snapshot:  filepath.Base(path),
		CreatedAt: snap.TakenAt,
	}
	if b, err := json.MarshalIndent(meta, "", "  "); err == nil {
		_ = os.WriteFile(filepath.Join(mapDir, "meta.json"), b, 0o644)
	}

	return path, nil
}

// Read loads a compressed snapshot back.
func Read(path string) (MapSnapshot, error) {
	var snap MapSnapshot
	in, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer in.Close()

	dec, err := zstd.NewReader(in)
	if err != nil {
		return snap, err
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return snap, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
