package models

import "time"

// TickRecord is one append-only row per executed tick across all maps.
// Errors holds per-map failure messages; a failing map never aborts the
// others, so a record can carry both aggregates and errors.
type TickRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	StartedAt  time.Time `json:"started_at" gorm:"type:timestamp;not null;index"`
	DurationMs int64     `json:"duration_ms" gorm:"type:bigint;not null;default:0"`

	MapsProcessed         int `json:"maps_processed" gorm:"type:integer;not null;default:0"`
	FiresStarted          int `json:"fires_started" gorm:"type:integer;not null;default:0"`
	FiresExtinguished     int `json:"fires_extinguished" gorm:"type:integer;not null;default:0"`
	BuildingsCollapsed    int `json:"buildings_collapsed" gorm:"type:integer;not null;default:0"`
	BuildingsRecalculated int `json:"buildings_recalculated" gorm:"type:integer;not null;default:0"`

	TotalNetProfit int64 `json:"total_net_profit" gorm:"type:bigint;not null;default:0"`
	TotalTax       int64 `json:"total_tax" gorm:"type:bigint;not null;default:0"`

	Errors []string `json:"errors" gorm:"serializer:json"`
}
