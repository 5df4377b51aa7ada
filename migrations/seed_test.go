package migrations

import (
	"testing"

	"citytick/types"
)

const validCatalog = `
building_types:
  - name: Corner Shop
    category: commercial
    base_profit: 100
    base_cost: 1000
    commercial_synergy: 0.05
    adjacency_bonuses:
      road: 0.10
    adjacency_penalties:
      water: 0.05
`

func TestParseCatalog(t *testing.T) {
	catalog, err := parseCatalog([]byte(validCatalog))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(catalog) != 1 {
		t.Fatalf("expected 1 building type, got %d", len(catalog))
	}
	bt := catalog[0]
	if bt.Name != "Corner Shop" || bt.Category != types.CategoryCommercial {
		t.Fatalf("unexpected type: %+v", bt)
	}
	if bt.AdjacencyBonuses[types.TerrainRoad] != 0.10 {
		t.Fatalf("road bonus lost: %+v", bt.AdjacencyBonuses)
	}
	if bt.AdjacencyPenalties[types.TerrainWater] != 0.05 {
		t.Fatalf("water penalty lost: %+v", bt.AdjacencyPenalties)
	}
}

func TestParseCatalogRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty catalog", `building_types: []`},
		{"missing name", `
building_types:
  - category: commercial
    base_profit: 10
    base_cost: 100
`},
		{"unknown category", `
building_types:
  - name: X
    category: mystery
    base_profit: 10
    base_cost: 100
`},
		{"zero cost", `
building_types:
  - name: X
    category: civic
    base_profit: 10
    base_cost: 0
`},
		{"unknown terrain", `
building_types:
  - name: X
    category: civic
    base_profit: 10
    base_cost: 100
    adjacency_bonuses:
      lava: 0.1
`},
		{"modifier above one", `
building_types:
  - name: X
    category: civic
    base_profit: 10
    base_cost: 100
    adjacency_penalties:
      road: 1.5
`},
		{"synergy above one", `
building_types:
  - name: X
    category: commercial
    base_profit: 10
    base_cost: 100
    commercial_synergy: 1.5
`},
	}
	for _, tc := range cases {
		if _, err := parseCatalog([]byte(tc.yaml)); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestShippedCatalogIsValid(t *testing.T) {
	catalog, err := LoadCatalog("building_types.yaml")
	if err != nil {
		t.Fatalf("shipped catalog invalid: %v", err)
	}
	if len(catalog) == 0 {
		t.Fatal("shipped catalog empty")
	}
}
