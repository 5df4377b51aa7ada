package models

type GameMap struct {
	Model
	Name     string `json:"name" gorm:"type:varchar(255);not null;unique"`
	Width    int    `json:"width" gorm:"type:integer;not null"`
	Height   int    `json:"height" gorm:"type:integer;not null"`
	Seed     int64  `json:"seed" gorm:"type:bigint;not null"`
	IsActive bool   `json:"is_active" gorm:"type:boolean;not null;default:true"`
}
