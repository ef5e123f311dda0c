package cron

import (
	"context"
	"log"

	"github.com/eventflow-ifc/eventflow-backend/internal/repository"
	"github.com/robfig/cron/v3"
)

// Scheduler handles scheduled maintenance tasks
type Scheduler struct {
	cron         *cron.Cron
	resourceRepo repository.ResourceRepository
}

// NewScheduler creates a new scheduler
func NewScheduler(resourceRepo repository.ResourceRepository) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		resourceRepo: resourceRepo,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Run every night at 3 AM - sweep resource requirements whose project is
	// gone. The cascade delete is transactional, but rows written out-of-band
	// can still dangle.
	s.cron.AddFunc("0 3 * * *", func() {
		log.Println("[Cron] Running orphaned resource sweep...")
		s.sweepOrphanedResources()
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}

func (s *Scheduler) sweepOrphanedResources() {
	ctx := context.Background()

	removed, err := s.resourceRepo.DeleteOrphans(ctx)
	if err != nil {
		log.Printf("[Cron] Error sweeping orphaned resources: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[Cron] Removed %d orphaned resource requirement(s)", removed)
	}
}
