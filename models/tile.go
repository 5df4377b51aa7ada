package models

import "citytick/types"

// Tile is immutable after map generation; terrain edits are an explicit
// admin operation outside the tick engine.
type Tile struct {
	ID           uint               `json:"id" gorm:"primaryKey;autoIncrement"`
	MapID        uint               `json:"map_id" gorm:"type:integer;not null;index:idx_tiles_map_coord,unique"`
	Map          *GameMap           `json:"map,omitempty" gorm:"foreignKey:MapID;references:ID"`
	CoordX       int                `json:"coord_x" gorm:"type:integer;not null;index:idx_tiles_map_coord,unique"`
	CoordY       int                `json:"coord_y" gorm:"type:integer;not null;index:idx_tiles_map_coord,unique"`
	Terrain      types.TerrainType  `json:"terrain" gorm:"type:integer;not null"`
	LocationTier types.LocationTier `json:"location_tier" gorm:"type:integer;not null"`
}
