package jobs

import (
	"context"
	"log"
	"time"
)

// statusRefresher is the slice of the competition usecase the job needs.
type statusRefresher interface {
	RefreshStatuses(ctx context.Context) (int, error)
}

// CompetitionStatusRefreshJob keeps persisted competition statuses in sync
// with their date ranges. Statuses change at day granularity, so a long
// interval is enough; reads still derive the live status themselves.
type CompetitionStatusRefreshJob struct {
	refresher statusRefresher
	interval  time.Duration
	stop      chan struct{}
}

func NewCompetitionStatusRefreshJob(refresher statusRefresher) *CompetitionStatusRefreshJob {
	return &CompetitionStatusRefreshJob{
		refresher: refresher,
		interval:  1 * time.Hour,
		stop:      make(chan struct{}),
	}
}

func (j *CompetitionStatusRefreshJob) Start(ctx context.Context) {
	log.Println("🕐 Starting competition status refresh job...")

	// Run once at startup so a restarted server catches up immediately
	j.refresh(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Competition status refresh job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Competition status refresh job stopped")
			return
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *CompetitionStatusRefreshJob) Stop() {
	close(j.stop)
}

func (j *CompetitionStatusRefreshJob) refresh(ctx context.Context) {
	updated, err := j.refresher.RefreshStatuses(ctx)
	if err != nil {
		log.Printf("❌ Error refreshing competition statuses: %v", err)
		return
	}
	if updated > 0 {
		log.Printf("✅ Refreshed %d competition statuses", updated)
	}
}
