package mechanics

import (
	"math/rand/v2"

	"citytick/models"
	"citytick/types"
)

// FireReport summarizes one fire pass over a map.
type FireReport struct {
	Started      int
	Extinguished int
	Collapsed    int
	// Changed holds every building whose fire state or damage moved this
	// pass, for dirty marking and persistence.
	Changed []*models.Building
}

// AdvanceFire runs the per-tick fire state machine over one map's
// buildings. Two passes: first every building burning at the start of the
// tick accrues damage and resolves extinguish/collapse, then spread is
// rolled against its neighbors. Buildings ignited by spread this tick are
// not resolved until the next tick, so outcomes do not depend on iteration
// order.
func AdvanceFire(ix *Index, buildings []*models.Building, s models.TickSettings, rng *rand.Rand) FireReport {
	var report FireReport

	burning := make([]*models.Building, 0)
	for _, b := range buildings {
		if b.IsOnFire && !b.IsCollapsed {
			burning = append(burning, b)
		}
	}

	// Resolve pass: damage, extinguish, collapse.
	for _, b := range burning {
		damage := s.FireDamageBase
		if b.HasSprinklers {
			damage = s.FireDamageWithSprinklers
		}
		b.DamagePercent += damage
		if b.DamagePercent > 100 {
			b.DamagePercent = 100
		}
		report.Changed = append(report.Changed, b)

		if b.HasSprinklers && rng.Float64() < s.SprinklerExtinguishChance {
			b.IsOnFire = false
			report.Extinguished++
		}
		if b.DamagePercent >= s.CollapseThreshold {
			b.IsCollapsed = true
			b.IsOnFire = false
			report.Collapsed++
		}
	}

	// Spread pass. A building that burned this tick spreads even if its
	// sprinklers just put it out; a building that collapsed does not.
	for _, b := range burning {
		if b.IsCollapsed {
			continue
		}
		for _, nb := range ix.NeighborBuildings(b.CoordX, b.CoordY, s.AdjacencyRange) {
			if nb.IsCollapsed || nb.IsOnFire {
				continue
			}
			chance := s.FireSpreadChance
			// Trees carry fire: forest adjacent to the target raises the odds.
			if ix.HasTerrainNear(nb.CoordX, nb.CoordY, 1, types.TerrainForest) {
				chance = s.FireSpreadChanceTrees
			}
			if rng.Float64() < chance {
				nb.IsOnFire = true
				report.Started++
				report.Changed = append(report.Changed, nb)
			}
		}
	}

	return report
}
