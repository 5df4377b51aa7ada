package types

// ModifierSource tags a single entry in a profit or value breakdown.
// Serialized as a stable string so consumers never parse free-form text.
type ModifierSource string

const (
	ModifierTerrainBonus      ModifierSource = "terrain_bonus"
	ModifierTerrainPenalty    ModifierSource = "terrain_penalty"
	ModifierCommercialSynergy ModifierSource = "commercial_synergy"
	ModifierDamagedNeighbor   ModifierSource = "damaged_neighbor"
	ModifierPremiumTerrain    ModifierSource = "premium_terrain"
	ModifierValueFloor        ModifierSource = "value_floor"
)
