package mechanics

import (
	"testing"

	"citytick/models"
	"citytick/types"
)

func gridTiles(width, height int, terrain types.TerrainType) []models.Tile {
	var tiles []models.Tile
	id := uint(1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles = append(tiles, models.Tile{
				ID: id, MapID: 1, CoordX: x, CoordY: y, Terrain: terrain,
			})
			id++
		}
	}
	return tiles
}

func TestNeighborsRadius(t *testing.T) {
	ix := NewIndex(gridTiles(5, 5, types.TerrainLand), nil)

	if got := len(ix.Neighbors(2, 2, 2)); got != 24 {
		t.Fatalf("expected 24 neighbors at radius 2, got %d", got)
	}
	if got := len(ix.Neighbors(2, 2, 1)); got != 8 {
		t.Fatalf("expected 8 neighbors at radius 1, got %d", got)
	}
	// Map edge: only tiles that exist are returned.
	if got := len(ix.Neighbors(0, 0, 1)); got != 3 {
		t.Fatalf("expected 3 neighbors at corner, got %d", got)
	}
}

func TestNeighborsExcludesCenter(t *testing.T) {
	ix := NewIndex(gridTiles(3, 3, types.TerrainLand), nil)
	for _, nb := range ix.Neighbors(1, 1, 1) {
		if nb.CoordX == 1 && nb.CoordY == 1 {
			t.Fatal("center tile returned as its own neighbor")
		}
	}
}

func TestBuildingLookup(t *testing.T) {
	b := &models.Building{CoordX: 1, CoordY: 2}
	b.ID = 7
	ix := NewIndex(gridTiles(4, 4, types.TerrainLand), []*models.Building{b})

	got, ok := ix.BuildingAt(1, 2)
	if !ok || got.ID != 7 {
		t.Fatalf("expected building 7 at (1,2), got %v ok=%v", got, ok)
	}
	if _, ok := ix.BuildingAt(0, 0); ok {
		t.Fatal("expected no building at (0,0)")
	}

	nbs := ix.NeighborBuildings(0, 1, 2)
	if len(nbs) != 1 || nbs[0].ID != 7 {
		t.Fatalf("expected building 7 as neighbor, got %v", nbs)
	}
	if got := len(ix.NeighborBuildings(1, 2, 2)); got != 0 {
		t.Fatalf("center building must not be its own neighbor, got %d", got)
	}
}

func TestHasTerrainNear(t *testing.T) {
	tiles := gridTiles(5, 5, types.TerrainLand)
	tiles[0].Terrain = types.TerrainForest // (0,0)
	ix := NewIndex(tiles, nil)

	if !ix.HasTerrainNear(1, 1, 1, types.TerrainForest) {
		t.Fatal("expected forest within radius 1 of (1,1)")
	}
	if ix.HasTerrainNear(3, 3, 1, types.TerrainForest) {
		t.Fatal("expected no forest within radius 1 of (3,3)")
	}
}
