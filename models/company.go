package models

type Company struct {
	Model
	MapID   uint     `json:"map_id" gorm:"type:integer;not null;index"`
	Map     *GameMap `json:"map,omitempty" gorm:"foreignKey:MapID;references:ID"`
	Name    string   `json:"name" gorm:"type:varchar(255);not null"`
	Balance int64    `json:"balance" gorm:"type:bigint;not null;default:0"`
	// TicksSinceAction gates tick income: companies idle for long enough
	// stop earning until they act again.
	TicksSinceAction int `json:"ticks_since_action" gorm:"type:integer;not null;default:0"`
}

// Touch resets the idle counter. Called by the action paths (placement,
// demolition, trades) that live outside the tick engine.
func (c *Company) Touch() {
	c.TicksSinceAction = 0
}
