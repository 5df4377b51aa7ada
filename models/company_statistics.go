package models

// CompanyStatistics is one append-only row per (tick, company), keyed by
// tick for drill-down from the tick history.
type CompanyStatistics struct {
	Model
	TickRecordID uint        `json:"tick_record_id" gorm:"type:integer;not null;index"`
	TickRecord   *TickRecord `json:"tick_record,omitempty" gorm:"foreignKey:TickRecordID;references:ID"`
	CompanyID    uint        `json:"company_id" gorm:"type:integer;not null;index"`
	Company      *Company    `json:"company,omitempty" gorm:"foreignKey:CompanyID;references:ID"`

	BuildingsOwned  int     `json:"buildings_owned" gorm:"type:integer;not null"`
	BuildingsOnFire int     `json:"buildings_on_fire" gorm:"type:integer;not null"`
	AverageDamage   float64 `json:"average_damage" gorm:"type:double precision;not null"`
	NetProfit       int64   `json:"net_profit" gorm:"type:bigint;not null"`
	TaxPaid         int64   `json:"tax_paid" gorm:"type:bigint;not null"`
	IsEarning       bool    `json:"is_earning" gorm:"type:boolean;not null"`
}
