package mechanics

import (
	"fmt"
	"math"

	"citytick/models"
	"citytick/types"
)

// terrainOrder fixes the iteration order over terrain groups so breakdowns
// serialize identically for identical inputs.
var terrainOrder = []types.TerrainType{
	types.TerrainLand,
	types.TerrainRoad,
	types.TerrainWater,
	types.TerrainDirtTrack,
	types.TerrainForest,
}

// diminishing scales a per-tile bonus sub-linearly with the number of
// contributing tiles: the first tile counts fully, further identical tiles
// add only logarithmically.
func diminishing(bonus float64, count int) float64 {
	return bonus * (1 + math.Log(float64(count))/2)
}

func countTerrains(tiles []models.Tile) map[types.TerrainType]int {
	counts := make(map[types.TerrainType]int)
	for _, t := range tiles {
		counts[t.Terrain]++
	}
	return counts
}

// ComputeProfit derives a building's per-tick profit from its type, the
// surrounding terrain and the neighboring buildings. Pure: callers persist
// the result; nothing is mutated here.
//
// Modifiers, in order:
//   - terrain bonuses with diminishing returns per terrain group
//   - terrain penalties, linear in count (congestion does not diminish)
//   - commercial synergy per occupied (non-collapsed) neighboring tile
//   - a penalty per damaged neighbor; collapsed neighbors count as fully
//     damaged regardless of the damage they collapsed at
//
// Profit is clamped at zero.
func ComputeProfit(bt models.BuildingType, tiles []models.Tile, neighbors []*models.Building, s models.TickSettings) (int, []models.ModifierEntry) {
	var entries []models.ModifierEntry
	total := 0.0

	counts := countTerrains(tiles)
	for _, terrain := range terrainOrder {
		count := counts[terrain]
		if count == 0 {
			continue
		}
		if bonus, ok := bt.AdjacencyBonuses[terrain]; ok && bonus != 0 {
			amount := diminishing(bonus, count)
			entries = append(entries, models.ModifierEntry{
				Source: types.ModifierTerrainBonus,
				Detail: terrain.String(),
				Amount: amount,
			})
			total += amount
		}
		if penalty, ok := bt.AdjacencyPenalties[terrain]; ok && penalty != 0 {
			amount := -penalty * float64(count)
			entries = append(entries, models.ModifierEntry{
				Source: types.ModifierTerrainPenalty,
				Detail: terrain.String(),
				Amount: amount,
			})
			total += amount
		}
	}

	if bt.CommercialSynergy > 0 {
		occupied := 0
		for _, nb := range neighbors {
			if !nb.IsCollapsed {
				occupied++
			}
		}
		if occupied > 0 {
			amount := bt.CommercialSynergy * float64(occupied) * s.CommercialSynergyFactor
			entries = append(entries, models.ModifierEntry{
				Source: types.ModifierCommercialSynergy,
				Detail: fmt.Sprintf("%d occupied", occupied),
				Amount: amount,
			})
			total += amount
		}
	}

	for _, nb := range neighbors {
		damage := nb.EffectiveDamage()
		if damage <= 0 {
			continue
		}
		amount := -s.DamagedNeighborPenalty * damage / 100
		entries = append(entries, models.ModifierEntry{
			Source: types.ModifierDamagedNeighbor,
			Detail: fmt.Sprintf("building %d", nb.ID),
			Amount: amount,
		})
		total += amount
	}

	profit := math.Round(float64(bt.BaseProfit) * (1 + total))
	if profit < 0 {
		profit = 0
	}
	return int(profit), entries
}
