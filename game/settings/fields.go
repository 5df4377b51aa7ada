package settings

import (
	"fmt"

	"citytick/models"
)

// Field describes one tunable with its valid range and typed accessors.
// The registry is the single source of truth for validation; the storage
// layer does not enforce ranges.
type Field struct {
	Name string
	Min  float64
	Max  float64
	Get  func(*models.TickSettings) float64
	Set  func(*models.TickSettings, float64)
}

// Range is the [min,max] pair surfaced to the admin UI alongside values.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

var Fields = []Field{
	{
		Name: "adjacency_range", Min: 1, Max: 5,
		Get: func(s *models.TickSettings) float64 { return float64(s.AdjacencyRange) },
		Set: func(s *models.TickSettings, v float64) { s.AdjacencyRange = int(v) },
	},
	{
		Name: "fire_damage_base", Min: 1, Max: 50,
		Get: func(s *models.TickSettings) float64 { return s.FireDamageBase },
		Set: func(s *models.TickSettings, v float64) { s.FireDamageBase = v },
	},
	{
		Name: "fire_damage_with_sprinklers", Min: 0, Max: 25,
		Get: func(s *models.TickSettings) float64 { return s.FireDamageWithSprinklers },
		Set: func(s *models.TickSettings, v float64) { s.FireDamageWithSprinklers = v },
	},
	{
		Name: "sprinkler_extinguish_chance", Min: 0, Max: 1,
		Get: func(s *models.TickSettings) float64 { return s.SprinklerExtinguishChance },
		Set: func(s *models.TickSettings, v float64) { s.SprinklerExtinguishChance = v },
	},
	{
		Name: "fire_spread_chance", Min: 0, Max: 1,
		Get: func(s *models.TickSettings) float64 { return s.FireSpreadChance },
		Set: func(s *models.TickSettings, v float64) { s.FireSpreadChance = v },
	},
	{
		Name: "fire_spread_chance_trees", Min: 0, Max: 1,
		Get: func(s *models.TickSettings) float64 { return s.FireSpreadChanceTrees },
		Set: func(s *models.TickSettings, v float64) { s.FireSpreadChanceTrees = v },
	},
	{
		Name: "collapse_threshold", Min: 50, Max: 100,
		Get: func(s *models.TickSettings) float64 { return s.CollapseThreshold },
		Set: func(s *models.TickSettings, v float64) { s.CollapseThreshold = v },
	},
	{
		Name: "commercial_synergy_factor", Min: 0, Max: 2,
		Get: func(s *models.TickSettings) float64 { return s.CommercialSynergyFactor },
		Set: func(s *models.TickSettings, v float64) { s.CommercialSynergyFactor = v },
	},
	{
		Name: "damaged_neighbor_penalty", Min: 0, Max: 1,
		Get: func(s *models.TickSettings) float64 { return s.DamagedNeighborPenalty },
		Set: func(s *models.TickSettings, v float64) { s.DamagedNeighborPenalty = v },
	},
	{
		Name: "premium_terrain_value_bonus", Min: 0, Max: 1,
		Get: func(s *models.TickSettings) float64 { return s.PremiumTerrainValueBonus },
		Set: func(s *models.TickSettings, v float64) { s.PremiumTerrainValueBonus = v },
	},
	{
		Name: "min_value_floor", Min: 0, Max: 1,
		Get: func(s *models.TickSettings) float64 { return s.MinValueFloor },
		Set: func(s *models.TickSettings, v float64) { s.MinValueFloor = v },
	},
	{
		Name: "sale_to_state_fraction", Min: 0, Max: 1,
		Get: func(s *models.TickSettings) float64 { return s.SaleToStateFraction },
		Set: func(s *models.TickSettings, v float64) { s.SaleToStateFraction = v },
	},
	{
		Name: "min_listing_fraction", Min: 0, Max: 1,
		Get: func(s *models.TickSettings) float64 { return s.MinListingFraction },
		Set: func(s *models.TickSettings, v float64) { s.MinListingFraction = v },
	},
	{
		Name: "land_cost_multiplier", Min: 0.1, Max: 10,
		Get: func(s *models.TickSettings) float64 { return s.LandCostMultiplier },
		Set: func(s *models.TickSettings, v float64) { s.LandCostMultiplier = v },
	},
	{
		Name: "tax_rate_downtown", Min: 0, Max: 0.5,
		Get: func(s *models.TickSettings) float64 { return s.TaxRateDowntown },
		Set: func(s *models.TickSettings, v float64) { s.TaxRateDowntown = v },
	},
	{
		Name: "tax_rate_midtown", Min: 0, Max: 0.5,
		Get: func(s *models.TickSettings) float64 { return s.TaxRateMidtown },
		Set: func(s *models.TickSettings, v float64) { s.TaxRateMidtown = v },
	},
	{
		Name: "tax_rate_outskirts", Min: 0, Max: 0.5,
		Get: func(s *models.TickSettings) float64 { return s.TaxRateOutskirts },
		Set: func(s *models.TickSettings, v float64) { s.TaxRateOutskirts = v },
	},
	{
		Name: "earning_threshold_ticks", Min: 1, Max: 1000,
		Get: func(s *models.TickSettings) float64 { return float64(s.EarningThresholdTicks) },
		Set: func(s *models.TickSettings, v float64) { s.EarningThresholdTicks = int(v) },
	},
}

// FieldByName looks up a registry entry.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Ranges returns the valid range for every registered field.
func Ranges() map[string]Range {
	out := make(map[string]Range, len(Fields))
	for _, f := range Fields {
		out[f.Name] = Range{Min: f.Min, Max: f.Max}
	}
	return out
}

// Values flattens a settings row into a name→value map for the admin API.
func Values(s models.TickSettings) map[string]float64 {
	out := make(map[string]float64, len(Fields))
	for _, f := range Fields {
		out[f.Name] = f.Get(&s)
	}
	return out
}

// ValidationError reports a rejected settings field together with its valid
// range so the admin surface can show the offending field.
type ValidationError struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("error.validation.settings.%s.range", e.Field)
}

// UnknownFieldError reports a field name outside the registry.
type UnknownFieldError struct {
	Field string `json:"field"`
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("error.validation.settings.%s.unknown", e.Field)
}

// Validate checks a partial update against the registry. The whole update
// is rejected on the first offending field; nothing is applied.
func Validate(fields map[string]float64) error {
	for name, value := range fields {
		f, ok := FieldByName(name)
		if !ok {
			return &UnknownFieldError{Field: name}
		}
		if value < f.Min || value > f.Max {
			return &ValidationError{Field: name, Value: value, Min: f.Min, Max: f.Max}
		}
	}
	return nil
}
