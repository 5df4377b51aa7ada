package migrations

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"
	"gorm.io/gorm"

	"citytick/models"
	"citytick/types"
)

const (
	DefaultMapWidth  = 64
	DefaultMapHeight = 64

	// Noise scale: larger values give broader terrain features.
	terrainNoiseScale = 12.0

	waterLevel     = 0.30
	forestMoisture = 0.62
	dirtMoisture   = 0.25

	// Roads run on a fixed grid through non-water terrain.
	roadSpacing = 9
)

type WorldGenerator struct{}

func (m *WorldGenerator) GenerateWorld(db *gorm.DB) {
	// If the world is already generated, return
	if err := db.First(&models.GameMap{}).Error; err == nil {
		return
	}

	seed := rand.Int64()
	gameMap := models.GameMap{
		Name:     "New Harbor",
		Width:    DefaultMapWidth,
		Height:   DefaultMapHeight,
		Seed:     seed,
		IsActive: true,
	}

	// Begin transaction
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			fmt.Println("Transaction rolled back due to panic:", r)
		} else {
			tx.Commit()
		}
	}()

	if err := tx.Create(&gameMap).Error; err != nil {
		log.Fatalf("Error creating map: %v\n", err)
	}

	startTime := time.Now()
	tiles := GenerateTiles(gameMap.ID, gameMap.Width, gameMap.Height, seed)

	if err := tx.CreateInBatches(&tiles, 1000).Error; err != nil {
		log.Fatalf("Error creating tiles: %v\n", err)
	}
	fmt.Printf("World generation completed in %v (%d tiles)\n", time.Since(startTime), len(tiles))
}

// GenerateTiles builds a map's full immutable tile set from layered simplex
// noise: one elevation layer for water, one moisture layer for forest and
// dirt track, with a road grid over the remaining land. Deterministic for a
// given seed.
func GenerateTiles(mapID uint, width, height int, seed int64) []models.Tile {
	elevation := opensimplex.NewNormalized(seed)
	moisture := opensimplex.NewNormalized(seed + 1)

	tiles := make([]models.Tile, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			elev := elevation.Eval2(float64(x)/terrainNoiseScale, float64(y)/terrainNoiseScale)
			moist := moisture.Eval2(float64(x)/terrainNoiseScale, float64(y)/terrainNoiseScale)

			terrain := types.TerrainLand
			switch {
			case elev < waterLevel:
				terrain = types.TerrainWater
			case x%roadSpacing == 0 || y%roadSpacing == 0:
				terrain = types.TerrainRoad
			case moist > forestMoisture:
				terrain = types.TerrainForest
			case moist < dirtMoisture:
				terrain = types.TerrainDirtTrack
			}

			tiles = append(tiles, models.Tile{
				MapID:        mapID,
				CoordX:       x,
				CoordY:       y,
				Terrain:      terrain,
				LocationTier: tierFor(x, y, width, height),
			})
		}
	}
	return tiles
}

// tierFor assigns the location tier by Chebyshev distance from the map
// center: the inner sixth is downtown, the inner third midtown, the rest
// outskirts.
func tierFor(x, y, width, height int) types.LocationTier {
	cx, cy := width/2, height/2
	dx, dy := x-cx, y-cy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	d := dx
	if dy > d {
		d = dy
	}

	span := width
	if height > span {
		span = height
	}
	switch {
	case d <= span/6:
		return types.TierDowntown
	case d <= span/3:
		return types.TierMidtown
	default:
		return types.TierOutskirts
	}
}
