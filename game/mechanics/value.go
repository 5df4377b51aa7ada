package mechanics

import (
	"fmt"
	"math"

	"citytick/models"
	"citytick/types"
)

// premiumTerrains raise resale value when present nearby.
var premiumTerrains = []types.TerrainType{types.TerrainWater, types.TerrainForest}

// landCostBase is the per-tier land cost before the settings multiplier.
var landCostBase = map[types.LocationTier]float64{
	types.TierDowntown:  500,
	types.TierMidtown:   250,
	types.TierOutskirts: 100,
}

// LandCost returns the land component of a tile's price.
func LandCost(tier types.LocationTier, s models.TickSettings) float64 {
	return landCostBase[tier] * s.LandCostMultiplier
}

// ComputeValue derives a building's resale value. Same shape as
// ComputeProfit but with the value modifier set: damaged/collapsed
// neighbors depress value, premium terrain raises it, and the result never
// drops below the configured fraction of base cost.
func ComputeValue(bt models.BuildingType, tiles []models.Tile, neighbors []*models.Building, s models.TickSettings) (int, []models.ModifierEntry) {
	var entries []models.ModifierEntry
	total := 0.0

	counts := countTerrains(tiles)
	for _, terrain := range premiumTerrains {
		count := counts[terrain]
		if count == 0 {
			continue
		}
		amount := diminishing(s.PremiumTerrainValueBonus, count)
		entries = append(entries, models.ModifierEntry{
			Source: types.ModifierPremiumTerrain,
			Detail: terrain.String(),
			Amount: amount,
		})
		total += amount
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

	value := math.Round(float64(bt.BaseCost) * (1 + total))
	floor := math.Round(float64(bt.BaseCost) * s.MinValueFloor)
	if value < floor {
		entries = append(entries, models.ModifierEntry{
			Source: types.ModifierValueFloor,
			Amount: s.MinValueFloor,
		})
		value = floor
	}
	return int(value), entries
}

// SaleToState is the price the state pays for a building: half the value
// (configurable) scaled by structural health, plus the land cost.
func SaleToState(value int, health float64, tier types.LocationTier, s models.TickSettings) int {
	return int(math.Round(s.SaleToStateFraction*float64(value)*health + LandCost(tier, s)))
}

// MinListingPrice is the lowest price a building may be listed at.
func MinListingPrice(value int, s models.TickSettings) int {
	return int(math.Round(s.MinListingFraction * float64(value)))
}
