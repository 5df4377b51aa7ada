// Package recalc tracks which buildings need their profit and value
// recomputed. Adjacency effects are symmetric, so any mutation marks every
// non-collapsed building within the adjacency range of the affected tile,
// not just the building on it.
package recalc

import (
	"sync"

	"gorm.io/gorm"

	"citytick/game/mechanics"
	"citytick/models"
)

type Tracker struct {
	db *gorm.DB

	mu       sync.Mutex
	mapLocks map[uint]*sync.Mutex
}

func NewTracker(db *gorm.DB) *Tracker {
	return &Tracker{
		db:       db,
		mapLocks: make(map[uint]*sync.Mutex),
	}
}

// MapLock returns the mutex serializing all tick and dirty-queue work for
// one map. Consecutive ticks for the same map, and user mutations racing a
// running tick, all synchronize on this.
func (t *Tracker) MapLock(mapID uint) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	lock, ok := t.mapLocks[mapID]
	if !ok {
		lock = &sync.Mutex{}
		t.mapLocks[mapID] = lock
	}
	return lock
}

// MarkDirty flags every non-collapsed building within the Chebyshev radius
// of (x, y) on the given map. Called by the mutation paths: placement,
// demolition, damage changes, terrain edits.
func (t *Tracker) MarkDirty(mapID uint, x, y, radius int) error {
	lock := t.MapLock(mapID)
	lock.Lock()
	defer lock.Unlock()

	return t.db.Model(&models.Building{}).
		Where("map_id = ? AND is_collapsed = false", mapID).
		Where("coord_x BETWEEN ? AND ?", x-radius, x+radius).
		Where("coord_y BETWEEN ? AND ?", y-radius, y+radius).
		Update("needs_recalc", true).Error
}

// DrainDirty atomically claims and clears the dirty set for a map,
// returning the buildings to recompute. Draining an empty set is a no-op.
// The map lock serializes claims, so no row locking is needed.
func (t *Tracker) DrainDirty(mapID uint) ([]models.Building, error) {
	lock := t.MapLock(mapID)
	lock.Lock()
	defer lock.Unlock()

	var dirty []models.Building
	err := t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("map_id = ? AND needs_recalc = true AND is_collapsed = false", mapID).
			Find(&dirty).Error; err != nil {
			return err
		}
		if len(dirty) == 0 {
			return nil
		}
		ids := make([]uint, len(dirty))
		for i, b := range dirty {
			ids[i] = b.ID
		}
		return tx.Model(&models.Building{}).
			Where("id IN ?", ids).
			Update("needs_recalc", false).Error
	})
	if err != nil {
		return nil, err
	}
	return dirty, nil
}

// MarkIndexed performs the same radius marking against an in-memory index,
// used inside a tick where the map's buildings are already loaded. Returns
// the buildings it flagged.
func MarkIndexed(ix *mechanics.Index, x, y, radius int) []*models.Building {
	var marked []*models.Building
	for _, nb := range ix.NeighborBuildings(x, y, radius) {
		if nb.IsCollapsed || nb.NeedsRecalc {
			continue
		}
		nb.NeedsRecalc = true
		marked = append(marked, nb)
	}
	if b, ok := ix.BuildingAt(x, y); ok && !b.IsCollapsed && !b.NeedsRecalc {
		b.NeedsRecalc = true
		marked = append(marked, b)
	}
	return marked
}
