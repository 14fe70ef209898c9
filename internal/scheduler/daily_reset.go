package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"focusapp/internal/repository"
)

// DailyXPReset owns the background job that zeroes every user's XP at 00:00
// server-local time. It shares the request handlers' connection pool through
// the user repository and is started and stopped by the process lifecycle.
type DailyXPReset struct {
	sched    gocron.Scheduler
	userRepo repository.UserRepository
}

// NewDailyXPReset builds the scheduler and registers the midnight job.
func NewDailyXPReset(userRepo repository.UserRepository) (*DailyXPReset, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	r := &DailyXPReset{sched: sched, userRepo: userRepo}
	if _, err := sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(r.run),
	); err != nil {
		return nil, err
	}
	return r, nil
}

// Start begins running the midnight job.
func (r *DailyXPReset) Start() {
	r.sched.Start()
}

// Shutdown stops the scheduler and waits for a running job to finish.
func (r *DailyXPReset) Shutdown() error {
	return r.sched.Shutdown()
}

func (r *DailyXPReset) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	affected, err := r.userRepo.ResetAllXP(ctx)
	if err != nil {
		// Fatal to this run only; the next midnight tries again.
		log.Printf("[scheduler] daily xp reset failed: %v", err)
		return
	}
	log.Printf("[scheduler] daily xp reset completed, %d users", affected)
}
