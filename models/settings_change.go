package models

import "time"

// FieldDelta records a single field's before/after values in a settings
// change-log entry.
type FieldDelta struct {
	Old float64 `json:"old"`
	New float64 `json:"new"`
}

// SettingsChange is the append-only audit log of settings updates.
type SettingsChange struct {
	ID        string                `json:"id" gorm:"type:varchar(36);primaryKey"`
	Actor     string                `json:"actor" gorm:"type:varchar(255);not null"`
	Fields    map[string]FieldDelta `json:"fields" gorm:"serializer:json"`
	CreatedAt time.Time             `json:"created_at"`
}
