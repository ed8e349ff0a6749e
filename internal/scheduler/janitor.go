// Package scheduler wires up the cron job that periodically sweeps expired
// dedup records out of the in-memory guard.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Sweeper is the part of the dedup guard the janitor needs.
type Sweeper interface {
	// Sweep drops expired records and returns how many were removed.
	Sweep() int
}

// Janitor wraps robfig/cron and manages the sweep loop.
type Janitor struct {
	cron  *cron.Cron
	guard Sweeper
	spec  string // cron spec, e.g. "@every 1h"
}

// New creates a Janitor that fires every intervalHours hours.
func New(guard Sweeper, intervalHours int) *Janitor {
	return &Janitor{
		cron:  cron.New(cron.WithLogger(cron.DefaultLogger)),
		guard: guard,
		spec:  fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the sweep job and starts the scheduler.
func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.runSweep)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	j.cron.Start()
	log.Printf("[janitor] Cron started — spec: %s", j.spec)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (j *Janitor) Stop() {
	j.cron.Stop()
	log.Println("[janitor] Cron stopped")
}

func (j *Janitor) runSweep() {
	if removed := j.guard.Sweep(); removed > 0 {
		log.Printf("[janitor] Swept %d expired dedup record(s)", removed)
	}
}
