package mechanics

import (
	"testing"

	"citytick/game/settings"
	"citytick/models"
	"citytick/types"
)

func TestValuePremiumTerrain(t *testing.T) {
	bt := models.BuildingType{BaseCost: 1000}
	value, entries := ComputeValue(bt, terrainTiles(types.TerrainWater), nil, settings.Defaults())
	// 1000 × (1 + 0.05) = 1050
	if value != 1050 {
		t.Fatalf("expected 1050, got %d", value)
	}
	if len(entries) != 1 || entries[0].Source != types.ModifierPremiumTerrain {
		t.Fatalf("unexpected breakdown: %+v", entries)
	}
}

func TestValueFloor(t *testing.T) {
	bt := models.BuildingType{BaseCost: 1000}
	neighbors := make([]*models.Building, 8)
	for i := range neighbors {
		neighbors[i] = &models.Building{IsCollapsed: true}
		neighbors[i].ID = uint(i + 1)
	}
	s := settings.Defaults()
	value, entries := ComputeValue(bt, nil, neighbors, s)
	// Eight collapsed neighbors: −0.80 → 200, below the 0.25 floor of 250.
	if value != 250 {
		t.Fatalf("expected floored value 250, got %d", value)
	}
	last := entries[len(entries)-1]
	if last.Source != types.ModifierValueFloor {
		t.Fatalf("expected value floor entry, got %+v", last)
	}
}

func TestValueFloorHolds(t *testing.T) {
	bt := models.BuildingType{BaseCost: 1000}
	s := settings.Defaults()
	for n := 0; n <= 12; n++ {
		neighbors := make([]*models.Building, n)
		for i := range neighbors {
			neighbors[i] = &models.Building{IsCollapsed: true}
		}
		value, _ := ComputeValue(bt, nil, neighbors, s)
		if float64(value) < float64(bt.BaseCost)*s.MinValueFloor {
			t.Fatalf("value %d below floor with %d collapsed neighbors", value, n)
		}
	}
}

func TestSaleToState(t *testing.T) {
	s := settings.Defaults()
	// 0.5 × 1000 × 1.0 + 100 (outskirts land) = 600
	if got := SaleToState(1000, 1.0, types.TierOutskirts, s); got != 600 {
		t.Fatalf("expected 600, got %d", got)
	}
	// Half health halves the structure component: 0.5 × 1000 × 0.5 + 500 = 750
	if got := SaleToState(1000, 0.5, types.TierDowntown, s); got != 750 {
		t.Fatalf("expected 750, got %d", got)
	}
}

func TestMinListingPrice(t *testing.T) {
	if got := MinListingPrice(1000, settings.Defaults()); got != 800 {
		t.Fatalf("expected 800, got %d", got)
	}
}

func TestBuildingHealth(t *testing.T) {
	b := models.Building{DamagePercent: 40}
	if got := b.Health(); got != 0.6 {
		t.Fatalf("expected 0.6, got %f", got)
	}
	b.DamagePercent = 100
	if got := b.Health(); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}
}
