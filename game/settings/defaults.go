package settings

import "citytick/models"

// Defaults is the hard-coded fallback parameter set. The tick must never
// hard-fail because the settings row is missing or unreadable, so every
// field here must sit inside its registered range.
func Defaults() models.TickSettings {
	return models.TickSettings{
		AdjacencyRange: 2,

		FireDamageBase:            10,
		FireDamageWithSprinklers:  5,
		SprinklerExtinguishChance: 0.5,
		FireSpreadChance:          0.05,
		FireSpreadChanceTrees:     0.15,
		CollapseThreshold:         100,

		CommercialSynergyFactor:  0.5,
		DamagedNeighborPenalty:   0.10,
		PremiumTerrainValueBonus: 0.05,

		MinValueFloor:       0.25,
		SaleToStateFraction: 0.5,
		MinListingFraction:  0.8,
		LandCostMultiplier:  1.0,

		TaxRateDowntown:  0.15,
		TaxRateMidtown:   0.10,
		TaxRateOutskirts: 0.05,

		EarningThresholdTicks: 30,
	}
}
