package services

import (
	"log"
	"time"

	"github.com/pcadcreative/foodexpress/entity"
	"github.com/pcadcreative/foodexpress/pkg/metrics"
	"github.com/pcadcreative/foodexpress/repository"
)

// StatusUpdater walks orders through the delivery lifecycle on a fixed
// interval, with no human involvement. Each sweep advances an order at
// most one hop: the advance resets updated_at, so an order that sat
// through several dwell periods still visits every state, one tick at
// a time.
type StatusUpdater struct {
	Repo     *repository.OrderRepository
	Interval time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewStatusUpdater(repo *repository.OrderRepository, interval time.Duration) *StatusUpdater {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatusUpdater{
		Repo:     repo,
		Interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the background loop. The first sweep runs immediately.
func (u *StatusUpdater) Start() {
	log.Printf("order status updater started, sweeping every %s", u.Interval)
	go u.loop()
}

// Stop halts the loop and blocks until any in-flight sweep finishes.
func (u *StatusUpdater) Stop() {
	close(u.stop)
	<-u.done
}

func (u *StatusUpdater) loop() {
	defer close(u.done)

	u.Sweep(time.Now())

	ticker := time.NewTicker(u.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-u.stop:
			return
		case now := <-ticker.C:
			u.Sweep(now)
		}
	}
}

// Sweep advances every order whose dwell time has elapsed as of now.
// Orders are handled independently: a storage failure on one is logged
// and skipped so the rest of the tick still progresses.
func (u *StatusUpdater) Sweep(now time.Time) int {
	advanced := 0
	for _, hop := range entity.StatusFlow {
		cutoff := now.Add(-hop.Dwell)

		ids, err := u.Repo.FindDueIDs(hop.From, cutoff)
		if err != nil {
			log.Printf("status sweep: listing %s orders: %v", hop.From, err)
			continue
		}

		for _, id := range ids {
			ok, err := u.Repo.AdvanceStatus(id, hop.From, hop.Next, cutoff, now)
			if err != nil {
				log.Printf("status sweep: order %d: %v", id, err)
				continue
			}
			if !ok {
				// another sweep or a cancellation beat us to it
				continue
			}
			log.Printf("order %d updated from %s to %s", id, hop.From, hop.Next)
			metrics.StatusTransitions.WithLabelValues(hop.From, hop.Next).Inc()
			advanced++
		}
	}
	return advanced
}
