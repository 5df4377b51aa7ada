package mechanics

import (
	"fmt"

	"citytick/models"
	"citytick/types"
)

// Index is a coordinate-keyed view of one map's tiles and buildings. It is
// built once per map per tick so every neighbor scan is a bounded radius
// walk with O(1) lookups instead of a pass over the full tile set.
type Index struct {
	tiles     map[string]models.Tile
	buildings map[string]*models.Building
}

func tileKey(x, y int) string {
	return fmt.Sprintf("%d:%d", x, y)
}

func NewIndex(tiles []models.Tile, buildings []*models.Building) *Index {
	ix := &Index{
		tiles:     make(map[string]models.Tile, len(tiles)),
		buildings: make(map[string]*models.Building, len(buildings)),
	}
	for _, t := range tiles {
		ix.tiles[tileKey(t.CoordX, t.CoordY)] = t
	}
	for _, b := range buildings {
		ix.buildings[tileKey(b.CoordX, b.CoordY)] = b
	}
	return ix
}

func (ix *Index) Tile(x, y int) (models.Tile, bool) {
	t, ok := ix.tiles[tileKey(x, y)]
	return t, ok
}

func (ix *Index) BuildingAt(x, y int) (*models.Building, bool) {
	b, ok := ix.buildings[tileKey(x, y)]
	return b, ok
}

// Neighbors returns all existing tiles with Chebyshev distance 1..radius
// from the center, excluding the center itself. Scan order is fixed
// (row-major) so downstream breakdowns stay deterministic.
func (ix *Index) Neighbors(x, y, radius int) []models.Tile {
	var out []models.Tile
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if t, ok := ix.Tile(x+dx, y+dy); ok {
				out = append(out, t)
			}
		}
	}
	return out
}

// NeighborBuildings returns buildings on tiles within the radius, excluding
// any building on the center tile. Collapsed buildings are included; the
// calculators decide whether they contribute bonuses or only penalties.
func (ix *Index) NeighborBuildings(x, y, radius int) []*models.Building {
	var out []*models.Building
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b, ok := ix.BuildingAt(x+dx, y+dy); ok {
				out = append(out, b)
			}
		}
	}
	return out
}

// HasTerrainNear reports whether any tile within the radius (center
// included) has the given terrain.
func (ix *Index) HasTerrainNear(x, y, radius int, terrain types.TerrainType) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if t, ok := ix.Tile(x+dx, y+dy); ok && t.Terrain == terrain {
				return true
			}
		}
	}
	return false
}
