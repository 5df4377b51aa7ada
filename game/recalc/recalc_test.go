package recalc

import (
	"testing"

	"citytick/game/mechanics"
	"citytick/models"
	"citytick/types"
)

func testIndex(buildings []*models.Building) *mechanics.Index {
	var tiles []models.Tile
	id := uint(1)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			tiles = append(tiles, models.Tile{ID: id, MapID: 1, CoordX: x, CoordY: y, Terrain: types.TerrainLand})
			id++
		}
	}
	return mechanics.NewIndex(tiles, buildings)
}

func building(id uint, x, y int) *models.Building {
	b := &models.Building{CoordX: x, CoordY: y}
	b.ID = id
	return b
}

func TestMarkIndexedRadius(t *testing.T) {
	center := building(1, 5, 5)
	near := building(2, 7, 3)     // Chebyshev 2
	edge := building(3, 3, 7)     // Chebyshev 2
	outside := building(4, 8, 5)  // Chebyshev 3
	diagonal := building(5, 8, 8) // Chebyshev 3

	all := []*models.Building{center, near, edge, outside, diagonal}
	ix := testIndex(all)

	marked := MarkIndexed(ix, 5, 5, 2)
	if len(marked) != 3 {
		t.Fatalf("expected 3 marked, got %d", len(marked))
	}
	if !center.NeedsRecalc || !near.NeedsRecalc || !edge.NeedsRecalc {
		t.Fatal("expected every building within the radius marked, including the center")
	}
	if outside.NeedsRecalc || diagonal.NeedsRecalc {
		t.Fatal("buildings outside the radius must not be marked")
	}
}

func TestMarkIndexedSkipsCollapsed(t *testing.T) {
	ruin := building(1, 5, 6)
	ruin.IsCollapsed = true
	ix := testIndex([]*models.Building{ruin})

	if marked := MarkIndexed(ix, 5, 5, 2); len(marked) != 0 {
		t.Fatalf("collapsed buildings must not be marked, got %d", len(marked))
	}
	if ruin.NeedsRecalc {
		t.Fatal("collapsed building flagged dirty")
	}
}

func TestMarkIndexedAlreadyDirty(t *testing.T) {
	b := building(1, 5, 6)
	b.NeedsRecalc = true
	ix := testIndex([]*models.Building{b})

	// Already-dirty buildings are not reported again.
	if marked := MarkIndexed(ix, 5, 5, 2); len(marked) != 0 {
		t.Fatalf("expected no newly marked buildings, got %d", len(marked))
	}
}

func TestMarkIndexedEmptyArea(t *testing.T) {
	ix := testIndex(nil)
	if marked := MarkIndexed(ix, 5, 5, 2); len(marked) != 0 {
		t.Fatalf("marking an empty area must be a no-op, got %d", len(marked))
	}
}
