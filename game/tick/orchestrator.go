// Package tick drives the periodic simulation cycle: fire resolution,
// dirty-tracked profit recomputation, company rollups, taxation, and
// persistence of the tick's statistics.
package tick

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"gorm.io/gorm"

	"citytick/game/mechanics"
	"citytick/game/recalc"
	"citytick/game/settings"
	"citytick/game/snapshot"
	"citytick/models"
	"citytick/types"
)

type Orchestrator struct {
	DB       *gorm.DB
	Provider *settings.Provider
	Tracker  *recalc.Tracker
	Archiver *snapshot.Archiver
	// Workers bounds parallelism across maps. Maps share no mutable
	// state, so anything >= 1 is safe; per-map locks still serialize
	// consecutive ticks touching the same map.
	Workers int
}

type mapOutcome struct {
	firesStarted      int
	firesExtinguished int
	collapsed         int
	recalculated      int
	netProfit         int64
	tax               int64
}

// RunTick executes one full tick across all active maps. Settings are read
// once and passed by value everywhere; a concurrent settings update applies
// from the next tick. A failing map is recorded in the tick's error list
// and does not abort the others.
func (o *Orchestrator) RunTick(now time.Time) (*models.TickRecord, error) {
	s := o.Provider.Get()

	rec := &models.TickRecord{StartedAt: now.UTC(), Errors: []string{}}
	if err := o.DB.Create(rec).Error; err != nil {
		return nil, fmt.Errorf("create tick record: %w", err)
	}

	var maps []models.GameMap
	if err := o.DB.Where("is_active = true").Find(&maps).Error; err != nil {
		rec.Errors = append(rec.Errors, fmt.Sprintf("load maps: %v", err))
		o.finish(rec, now)
		return rec, nil
	}

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, m := range maps {
		wg.Add(1)
		sem <- struct{}{}
		go func(m models.GameMap) {
			defer wg.Done()
			defer func() { <-sem }()

			out, err := o.processMap(m, s, rec.ID, now)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rec.Errors = append(rec.Errors, fmt.Sprintf("map %d: %v", m.ID, err))
				return
			}
			rec.MapsProcessed++
			rec.FiresStarted += out.firesStarted
			rec.FiresExtinguished += out.firesExtinguished
			rec.BuildingsCollapsed += out.collapsed
			rec.BuildingsRecalculated += out.recalculated
			rec.TotalNetProfit += out.netProfit
			rec.TotalTax += out.tax
		}(m)
	}
	wg.Wait()

	o.finish(rec, now)
	return rec, nil
}

func (o *Orchestrator) finish(rec *models.TickRecord, start time.Time) {
	rec.DurationMs = time.Since(start).Milliseconds()
	if err := o.DB.Save(rec).Error; err != nil {
		log.Printf("tick %d: save record: %v", rec.ID, err)
	}
}

// processMap runs the full per-map pipeline under the map's lock: fire,
// dirty marking, recomputation, rollups, then one transactional persist.
func (o *Orchestrator) processMap(m models.GameMap, s models.TickSettings, tickID uint, now time.Time) (mapOutcome, error) {
	lock := o.Tracker.MapLock(m.ID)
	lock.Lock()
	defer lock.Unlock()

	var out mapOutcome

	var tiles []models.Tile
	if err := o.DB.Where("map_id = ?", m.ID).Find(&tiles).Error; err != nil {
		return out, fmt.Errorf("load tiles: %w", err)
	}
	var buildings []models.Building
	if err := o.DB.Where("map_id = ?", m.ID).Find(&buildings).Error; err != nil {
		return out, fmt.Errorf("load buildings: %w", err)
	}
	var buildingTypes []models.BuildingType
	if err := o.DB.Find(&buildingTypes).Error; err != nil {
		return out, fmt.Errorf("load building types: %w", err)
	}
	var companies []models.Company
	if err := o.DB.Where("map_id = ?", m.ID).Find(&companies).Error; err != nil {
		return out, fmt.Errorf("load companies: %w", err)
	}

	typeByID := make(map[uint]models.BuildingType, len(buildingTypes))
	for _, bt := range buildingTypes {
		typeByID[bt.ID] = bt
	}

	ptrs := make([]*models.Building, len(buildings))
	for i := range buildings {
		ptrs[i] = &buildings[i]
	}
	ix := mechanics.NewIndex(tiles, ptrs)

	// Phase 1: fire. Must complete before recomputation of the same map.
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(m.ID)))
	fire := mechanics.AdvanceFire(ix, ptrs, s, rng)
	out.firesStarted = fire.Started
	out.firesExtinguished = fire.Extinguished
	out.collapsed = fire.Collapsed

	changed := make(map[uint]*models.Building)
	for _, b := range fire.Changed {
		changed[b.ID] = b
		// Damage changes ripple to everything in range.
		for _, marked := range recalc.MarkIndexed(ix, b.CoordX, b.CoordY, s.AdjacencyRange) {
			changed[marked.ID] = marked
		}
	}

	// Phase 2: recompute the dirty set.
	recalculated, err := recomputeDirty(ix, ptrs, typeByID, s, changed)
	if err != nil {
		return out, err
	}
	out.recalculated = recalculated

	// Phase 3: company rollups with the idle earning gate and tiered tax.
	companyPtrs := make([]*models.Company, len(companies))
	for i := range companies {
		companyPtrs[i] = &companies[i]
	}
	stats, totalNet, totalTax := BuildRollups(ix, ptrs, companyPtrs, s, tickID)
	out.netProfit = totalNet
	out.tax = totalTax

	// Phase 4: one atomic batch for the whole map.
	err = o.DB.Transaction(func(tx *gorm.DB) error {
		for _, b := range changed {
			if err := tx.Save(b).Error; err != nil {
				return fmt.Errorf("save building %d: %w", b.ID, err)
			}
		}
		for _, c := range companyPtrs {
			if err := tx.Save(c).Error; err != nil {
				return fmt.Errorf("save company %d: %w", c.ID, err)
			}
		}
		if len(stats) > 0 {
			if err := tx.Create(&stats).Error; err != nil {
				return fmt.Errorf("save company statistics: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return out, err
	}

	if o.Archiver.Due(tickID) {
		snap := snapshot.FromBuildings(m.ID, tickID, ptrs)
		if _, err := o.Archiver.Archive(snap); err != nil {
			log.Printf("map %d: archive snapshot: %v", m.ID, err)
		}
	}

	return out, nil
}

// recomputeDirty recalculates profit and value for every building flagged
// dirty. Collapse is terminal for profit: collapsed buildings settle at
// zero profit and the value floor, with the dirty flag cleared, however
// they arrived there. Changed buildings are added to changed; returns the
// number of full recomputations.
func recomputeDirty(ix *mechanics.Index, buildings []*models.Building, typeByID map[uint]models.BuildingType, s models.TickSettings, changed map[uint]*models.Building) (int, error) {
	recalculated := 0
	for _, b := range buildings {
		if b.IsCollapsed {
			bt, ok := typeByID[b.BuildingTypeID]
			if !ok {
				return recalculated, fmt.Errorf("building %d: unknown type %d", b.ID, b.BuildingTypeID)
			}
			floor := int(math.Round(float64(bt.BaseCost) * s.MinValueFloor))
			if b.CalculatedProfit != 0 || b.CalculatedValue != floor || b.NeedsRecalc {
				b.CalculatedProfit = 0
				b.CalculatedValue = floor
				b.NeedsRecalc = false
				changed[b.ID] = b
			}
			continue
		}
		if !b.NeedsRecalc {
			continue
		}
		bt, ok := typeByID[b.BuildingTypeID]
		if !ok {
			return recalculated, fmt.Errorf("building %d: unknown type %d", b.ID, b.BuildingTypeID)
		}
		nbTiles := ix.Neighbors(b.CoordX, b.CoordY, s.AdjacencyRange)
		nbBuildings := ix.NeighborBuildings(b.CoordX, b.CoordY, s.AdjacencyRange)
		b.CalculatedProfit, b.ProfitBreakdown = mechanics.ComputeProfit(bt, nbTiles, nbBuildings, s)
		b.CalculatedValue, b.ValueBreakdown = mechanics.ComputeValue(bt, nbTiles, nbBuildings, s)
		b.NeedsRecalc = false
		changed[b.ID] = b
		recalculated++
	}
	return recalculated, nil
}

// TaxRate returns the tax rate for a location tier.
func TaxRate(s models.TickSettings, tier types.LocationTier) float64 {
	switch tier {
	case types.TierDowntown:
		return s.TaxRateDowntown
	case types.TierMidtown:
		return s.TaxRateMidtown
	default:
		return s.TaxRateOutskirts
	}
}

// BuildRollups aggregates per-company statistics for one map and applies
// income and tax to company balances. Companies idle past the earning
// threshold receive no tick income and pay no tax on it. Mutates the
// companies (balance, idle counter); callers persist them.
func BuildRollups(ix *mechanics.Index, buildings []*models.Building, companies []*models.Company, s models.TickSettings, tickID uint) ([]models.CompanyStatistics, int64, int64) {
	type rollup struct {
		owned   int
		onFire  int
		damage  float64
		profit  int64
		tax     int64
	}
	byCompany := make(map[uint]*rollup, len(companies))
	for _, c := range companies {
		byCompany[c.ID] = &rollup{}
	}

	for _, b := range buildings {
		if b.CompanyID == nil {
			continue
		}
		r, ok := byCompany[*b.CompanyID]
		if !ok {
			continue
		}
		r.owned++
		r.damage += b.DamagePercent
		if b.IsOnFire {
			r.onFire++
		}
		if b.IsCollapsed {
			continue
		}
		r.profit += int64(b.CalculatedProfit)
		if tile, ok := ix.Tile(b.CoordX, b.CoordY); ok {
			r.tax += int64(math.Round(float64(b.CalculatedProfit) * TaxRate(s, tile.LocationTier)))
		}
	}

	stats := make([]models.CompanyStatistics, 0, len(companies))
	var totalNet, totalTax int64
	for _, c := range companies {
		r := byCompany[c.ID]
		earning := c.TicksSinceAction < s.EarningThresholdTicks

		net, tax := r.profit, r.tax
		if !earning {
			net, tax = 0, 0
		}
		c.Balance += net - tax
		c.TicksSinceAction++

		avgDamage := 0.0
		if r.owned > 0 {
			avgDamage = r.damage / float64(r.owned)
		}
		stats = append(stats, models.CompanyStatistics{
			TickRecordID:    tickID,
			CompanyID:       c.ID,
			BuildingsOwned:  r.owned,
			BuildingsOnFire: r.onFire,
			AverageDamage:   avgDamage,
			NetProfit:       net,
			TaxPaid:         tax,
			IsEarning:       earning,
		})
		totalNet += net
		totalTax += tax
	}
	return stats, totalNet, totalTax
}
