package snapshot

import (
	"testing"

	"citytick/models"
)

func TestArchiverDue(t *testing.T) {
	a := &Archiver{Dir: "/tmp/snapshots", Every: 6}
	if !a.Due(6) || !a.Due(12) {
		t.Fatal("expected ticks on the interval to be due")
	}
	if a.Due(5) || a.Due(7) {
		t.Fatal("off-interval ticks must not be due")
	}

	disabled := &Archiver{Dir: "", Every: 6}
	if disabled.Due(6) {
		t.Fatal("archiver without a directory must stay disabled")
	}
	var nilArchiver *Archiver
	if nilArchiver.Due(6) {
		t.Fatal("nil archiver must stay disabled")
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	companyID := uint(3)
	b1 := &models.Building{
		TileID:           10,
		CoordX:           4,
		CoordY:           5,
		CompanyID:        &companyID,
		BuildingTypeID:   2,
		DamagePercent:    35,
		IsOnFire:         true,
		CalculatedProfit: 120,
		CalculatedValue:  900,
	}
	b1.ID = 1
	b2 := &models.Building{TileID: 11, CoordX: 6, CoordY: 5, BuildingTypeID: 1, IsCollapsed: true}
	b2.ID = 2

	snap := FromBuildings(1, 42, []*models.Building{b1, b2})
	if snap.MapID != 1 || snap.TickID != 42 || len(snap.Buildings) != 2 {
		t.Fatalf("unexpected snapshot header: %+v", snap)
	}

	a := &Archiver{Dir: t.TempDir(), Every: 1}
	path, err := a.Archive(snap)
	if err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.MapID != snap.MapID || got.TickID != snap.TickID || got.TakenAt != snap.TakenAt {
		t.Fatalf("header changed in round trip: %+v", got)
	}
	if len(got.Buildings) != 2 {
		t.Fatalf("expected 2 buildings, got %d", len(got.Buildings))
	}
	first := got.Buildings[0]
	if first.ID != 1 || first.CompanyID == nil || *first.CompanyID != 3 {
		t.Fatalf("ownership lost in round trip: %+v", first)
	}
	if first.DamagePercent != 35 || !first.IsOnFire || first.Profit != 120 || first.Value != 900 {
		t.Fatalf("state lost in round trip: %+v", first)
	}
	if !got.Buildings[1].IsCollapsed {
		t.Fatal("collapsed flag lost in round trip")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(t.TempDir() + "/missing.json.zst"); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}
