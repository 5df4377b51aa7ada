package models

import "time"

// TickSettings is the single current tunable parameter set. Exactly one row
// exists per deployment; the tick fetches it once per cycle and passes it by
// value so a running tick never sees a concurrent update. Valid ranges live
// in the settings field registry, not in the storage layer.
type TickSettings struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by" gorm:"type:varchar(255);not null;default:''"`

	AdjacencyRange int `json:"adjacency_range" gorm:"type:integer;not null"`

	FireDamageBase            float64 `json:"fire_damage_base" gorm:"type:double precision;not null"`
	FireDamageWithSprinklers  float64 `json:"fire_damage_with_sprinklers" gorm:"type:double precision;not null"`
	SprinklerExtinguishChance float64 `json:"sprinkler_extinguish_chance" gorm:"type:double precision;not null"`
	FireSpreadChance          float64 `json:"fire_spread_chance" gorm:"type:double precision;not null"`
	FireSpreadChanceTrees     float64 `json:"fire_spread_chance_trees" gorm:"type:double precision;not null"`
	CollapseThreshold         float64 `json:"collapse_threshold" gorm:"type:double precision;not null"`

	CommercialSynergyFactor  float64 `json:"commercial_synergy_factor" gorm:"type:double precision;not null"`
	DamagedNeighborPenalty   float64 `json:"damaged_neighbor_penalty" gorm:"type:double precision;not null"`
	PremiumTerrainValueBonus float64 `json:"premium_terrain_value_bonus" gorm:"type:double precision;not null"`

	MinValueFloor       float64 `json:"min_value_floor" gorm:"type:double precision;not null"`
	SaleToStateFraction float64 `json:"sale_to_state_fraction" gorm:"type:double precision;not null"`
	MinListingFraction  float64 `json:"min_listing_fraction" gorm:"type:double precision;not null"`
	LandCostMultiplier  float64 `json:"land_cost_multiplier" gorm:"type:double precision;not null"`

	TaxRateDowntown  float64 `json:"tax_rate_downtown" gorm:"type:double precision;not null"`
	TaxRateMidtown   float64 `json:"tax_rate_midtown" gorm:"type:double precision;not null"`
	TaxRateOutskirts float64 `json:"tax_rate_outskirts" gorm:"type:double precision;not null"`

	EarningThresholdTicks int `json:"earning_threshold_ticks" gorm:"type:integer;not null"`
}
