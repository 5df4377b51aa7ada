package tick

import (
	"log"
	"time"
)

// Scheduler invokes one tick per interval. If a tick overruns, the next one
// starts immediately after; overlapping work on the same map is prevented
// by the per-map locks, not by the schedule.
type Scheduler struct {
	Interval time.Duration
	Orch     *Orchestrator

	stop chan struct{}
}

func NewScheduler(interval time.Duration, orch *Orchestrator) *Scheduler {
	return &Scheduler{
		Interval: interval,
		Orch:     orch,
		stop:     make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (s *Scheduler) Run() {
	log.Printf("tick scheduler started, interval=%s", s.Interval)
	for {
		start := time.Now()
		rec, err := s.Orch.RunTick(start)
		if err != nil {
			log.Printf("tick failed: %v", err)
		} else {
			log.Printf("tick %d: maps=%d recalc=%d fires=%d/%d collapsed=%d profit=%d tax=%d errors=%d in %dms",
				rec.ID, rec.MapsProcessed, rec.BuildingsRecalculated,
				rec.FiresStarted, rec.FiresExtinguished, rec.BuildingsCollapsed,
				rec.TotalNetProfit, rec.TotalTax, len(rec.Errors), rec.DurationMs)
		}

		wait := s.Interval - time.Since(start)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-time.After(wait):
		case <-s.stop:
			log.Println("tick scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) Stop() {
	close(s.stop)
}
