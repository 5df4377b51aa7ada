package models

import "citytick/types"

// ModifierEntry is one line of a profit or value breakdown. Detail carries
// the terrain or neighbor context for display; Amount is the applied
// modifier fraction.
type ModifierEntry struct {
	Source types.ModifierSource `json:"source"`
	Detail string               `json:"detail,omitempty"`
	Amount float64              `json:"amount"`
}

type Building struct {
	Model
	MapID          uint          `json:"map_id" gorm:"type:integer;not null;index"`
	Map            *GameMap      `json:"map,omitempty" gorm:"foreignKey:MapID;references:ID"`
	TileID         uint          `json:"tile_id" gorm:"type:integer;not null;unique"`
	Tile           *Tile         `json:"tile,omitempty" gorm:"foreignKey:TileID;references:ID"`
	CoordX         int           `json:"coord_x" gorm:"type:integer;not null"`
	CoordY         int           `json:"coord_y" gorm:"type:integer;not null"`
	CompanyID      *uint         `json:"company_id,omitempty" gorm:"type:integer;null"` // nil when abandoned
	Company        *Company      `json:"company,omitempty" gorm:"foreignKey:CompanyID;references:ID"`
	BuildingTypeID uint          `json:"building_type_id" gorm:"type:integer;not null"`
	BuildingType   *BuildingType `json:"building_type,omitempty" gorm:"foreignKey:BuildingTypeID;references:ID"`

	DamagePercent float64 `json:"damage_percent" gorm:"type:double precision;not null;default:0"`
	IsOnFire      bool    `json:"is_on_fire" gorm:"type:boolean;not null;default:false"`
	IsCollapsed   bool    `json:"is_collapsed" gorm:"type:boolean;not null;default:false"`
	HasSprinklers bool    `json:"has_sprinklers" gorm:"type:boolean;not null;default:false"`

	CalculatedProfit int             `json:"calculated_profit" gorm:"type:integer;not null;default:0"`
	CalculatedValue  int             `json:"calculated_value" gorm:"type:integer;not null;default:0"`
	NeedsRecalc      bool            `json:"needs_recalc" gorm:"type:boolean;not null;default:true;index"`
	ProfitBreakdown  []ModifierEntry `json:"profit_breakdown" gorm:"serializer:json"`
	ValueBreakdown   []ModifierEntry `json:"value_breakdown" gorm:"serializer:json"`
}

// Health returns the structural health multiplier in [0,1].
func (b *Building) Health() float64 {
	h := 1.0 - b.DamagePercent/100.0
	if h < 0 {
		return 0
	}
	return h
}

// EffectiveDamage treats collapsed buildings as fully damaged for all
// neighbor penalty purposes, whatever damage they collapsed at.
func (b *Building) EffectiveDamage() float64 {
	if b.IsCollapsed {
		return 100
	}
	return b.DamagePercent
}
