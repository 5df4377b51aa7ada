package models

import "citytick/types"

// TerrainModifiers maps a terrain type to a profit modifier fraction.
// Stored as JSON with terrain names as keys; the closed enum replaces the
// free-form string bags the catalog used to be keyed by.
type TerrainModifiers map[types.TerrainType]float64

type BuildingType struct {
	Model
	Name     string                 `json:"name" gorm:"type:varchar(255);not null;unique"`
	Category types.BuildingCategory `json:"category" gorm:"type:integer;not null"`
	// BaseProfit is the per-tick income before adjacency modifiers.
	BaseProfit int `json:"base_profit" gorm:"type:integer;not null"`
	BaseCost   int `json:"base_cost" gorm:"type:integer;not null"`
	// CommercialSynergy, when positive, is the bonus applied per occupied
	// neighboring tile regardless of terrain.
	CommercialSynergy  float64          `json:"commercial_synergy" gorm:"type:double precision;not null;default:0"`
	AdjacencyBonuses   TerrainModifiers `json:"adjacency_bonuses" gorm:"serializer:json"`
	AdjacencyPenalties TerrainModifiers `json:"adjacency_penalties" gorm:"serializer:json"`
}
