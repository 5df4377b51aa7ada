package migrations

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"citytick/game/settings"
	"citytick/models"
	"citytick/types"
)

type catalogFile struct {
	BuildingTypes []catalogEntry `yaml:"building_types"`
}

type catalogEntry struct {
	Name               string             `yaml:"name"`
	Category           string             `yaml:"category"`
	BaseProfit         int                `yaml:"base_profit"`
	BaseCost           int                `yaml:"base_cost"`
	CommercialSynergy  float64            `yaml:"commercial_synergy"`
	AdjacencyBonuses   map[string]float64 `yaml:"adjacency_bonuses"`
	AdjacencyPenalties map[string]float64 `yaml:"adjacency_penalties"`
}

// parseCatalog validates the building type catalog: terrain keys must be
// members of the closed terrain enum and magnitudes must be sane, so a bad
// catalog fails at seed time instead of producing silent zero modifiers.
func parseCatalog(raw []byte) ([]models.BuildingType, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.BuildingTypes) == 0 {
		return nil, fmt.Errorf("catalog has no building types")
	}

	out := make([]models.BuildingType, 0, len(file.BuildingTypes))
	for _, entry := range file.BuildingTypes {
		if entry.Name == "" {
			return nil, fmt.Errorf("building type with empty name")
		}
		category, ok := types.ParseCategory(entry.Category)
		if !ok {
			return nil, fmt.Errorf("building type %s: unknown category %q", entry.Name, entry.Category)
		}
		if entry.BaseProfit < 0 || entry.BaseCost <= 0 {
			return nil, fmt.Errorf("building type %s: invalid base profit/cost", entry.Name)
		}
		if entry.CommercialSynergy < 0 || entry.CommercialSynergy > 1 {
			return nil, fmt.Errorf("building type %s: commercial_synergy out of [0,1]", entry.Name)
		}

		bonuses, err := parseTerrainModifiers(entry.Name, entry.AdjacencyBonuses)
		if err != nil {
			return nil, err
		}
		penalties, err := parseTerrainModifiers(entry.Name, entry.AdjacencyPenalties)
		if err != nil {
			return nil, err
		}

		out = append(out, models.BuildingType{
			Name:               entry.Name,
			Category:           category,
			BaseProfit:         entry.BaseProfit,
			BaseCost:           entry.BaseCost,
			CommercialSynergy:  entry.CommercialSynergy,
			AdjacencyBonuses:   bonuses,
			AdjacencyPenalties: penalties,
		})
	}
	return out, nil
}

func parseTerrainModifiers(typeName string, raw map[string]float64) (models.TerrainModifiers, error) {
	mods := make(models.TerrainModifiers, len(raw))
	for name, magnitude := range raw {
		terrain, err := types.ParseTerrain(name)
		if err != nil {
			return nil, fmt.Errorf("building type %s: %w", typeName, err)
		}
		if magnitude < 0 || magnitude > 1 {
			return nil, fmt.Errorf("building type %s: %s modifier out of [0,1]", typeName, name)
		}
		mods[terrain] = magnitude
	}
	return mods, nil
}

// LoadCatalog reads and validates the building type catalog file.
func LoadCatalog(path string) ([]models.BuildingType, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseCatalog(raw)
}

func Seed(db *gorm.DB) {
	// silent mode
	db.Logger = logger.Default.LogMode(logger.Silent)

	// building type catalog
	catalog, err := LoadCatalog("migrations/building_types.yaml")
	if err != nil {
		log.Fatal("Seed failed:", err)
	}
	for _, bt := range catalog {
		db.Where(models.BuildingType{Name: bt.Name}).
			Attrs(bt).
			FirstOrCreate(&models.BuildingType{})
	}

	// settings row
	if err := settings.NewProvider(db).EnsureRow(); err != nil {
		log.Fatal("Seed settings failed:", err)
	}

	// generate world
	worldGenerator := WorldGenerator{}
	worldGenerator.GenerateWorld(db)

	// starter companies on the first map
	var gameMap models.GameMap
	if err := db.First(&gameMap).Error; err == nil {
		for _, name := range []string{"Harbor Holdings", "Northside Developments"} {
			company := models.Company{MapID: gameMap.ID, Name: name, Balance: 10000}
			db.FirstOrCreate(&company, models.Company{MapID: gameMap.ID, Name: name})
		}
	}

	// disable silent mode
	db.Logger = logger.Default.LogMode(logger.Info)
}
