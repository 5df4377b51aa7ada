package settings

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"citytick/models"
)

// Provider reads and writes the single current TickSettings row. Reads fall
// back to Defaults() so a missing or unreadable row can never fail a tick;
// writes are all-or-nothing and append a change-log entry.
type Provider struct {
	db *gorm.DB
}

func NewProvider(db *gorm.DB) *Provider {
	return &Provider{db: db}
}

// Get returns the current settings by value. On any read failure it logs a
// warning and returns the defaults.
func (p *Provider) Get() models.TickSettings {
	var row models.TickSettings
	if err := p.db.Order("id").First(&row).Error; err != nil {
		log.Printf("settings: falling back to defaults: %v", err)
		return Defaults()
	}
	return row
}

// EnsureRow creates the settings row with defaults if none exists yet.
// Called from migrations so the admin surface always has a row to show.
func (p *Provider) EnsureRow() error {
	var count int64
	if err := p.db.Model(&models.TickSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	row := Defaults()
	row.UpdatedBy = "seed"
	return p.db.Create(&row).Error
}

// Update applies a partial update. Every submitted field is validated
// against the registry first; any violation rejects the whole request and
// leaves both the settings row and the change log untouched.
func (p *Provider) Update(actor string, fields map[string]float64) (models.TickSettings, error) {
	if len(fields) == 0 {
		return models.TickSettings{}, errors.New("error.validation.settings.empty")
	}
	if err := Validate(fields); err != nil {
		return models.TickSettings{}, err
	}

	var updated models.TickSettings
	err := p.db.Transaction(func(tx *gorm.DB) error {
		var row models.TickSettings
		if err := tx.Order("id").First(&row).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("load settings: %w", err)
			}
			row = Defaults()
		}

		deltas := make(map[string]models.FieldDelta, len(fields))
		for name, value := range fields {
			f, _ := FieldByName(name)
			deltas[name] = models.FieldDelta{Old: f.Get(&row), New: value}
			f.Set(&row, value)
		}
		row.UpdatedBy = actor
		row.UpdatedAt = time.Now().UTC()

		if err := tx.Save(&row).Error; err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		change := models.SettingsChange{
			ID:     uuid.NewString(),
			Actor:  actor,
			Fields: deltas,
		}
		if err := tx.Create(&change).Error; err != nil {
			return fmt.Errorf("write change log: %w", err)
		}
		updated = row
		return nil
	})
	if err != nil {
		return models.TickSettings{}, err
	}
	return updated, nil
}

// Reset restores every field to its default and logs the full delta.
func (p *Provider) Reset(actor string) (models.TickSettings, error) {
	current := p.Get()
	fields := make(map[string]float64, len(Fields))
	defaults := Defaults()
	for _, f := range Fields {
		if f.Get(&current) != f.Get(&defaults) {
			fields[f.Name] = f.Get(&defaults)
		}
	}
	if len(fields) == 0 {
		return current, nil
	}
	return p.Update(actor, fields)
}

// Changes returns the most recent change-log entries, newest first.
func (p *Provider) Changes(limit int) ([]models.SettingsChange, error) {
	if limit <= 0 {
		limit = 20
	}
	var changes []models.SettingsChange
	err := p.db.Order("created_at DESC").Limit(limit).Find(&changes).Error
	return changes, err
}
