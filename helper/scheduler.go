package helper

import (
	"log"
	"time"

	"restaurant_manager/database"
	"restaurant_manager/realtime"

	"github.com/go-co-op/gocron/v2"
)

var dashboardScheduler gocron.Scheduler

// StartDashboardScheduler re-broadcasts the dashboard snapshot once a minute
// so long-lived viewers converge even if an earlier push was dropped.
func StartDashboardScheduler(b realtime.Broadcaster) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	dashboardScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			PublishDashboard(b, database.DB)
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("dashboard scheduler started (1m interval)")
}

func StopDashboardScheduler() {
	if dashboardScheduler != nil {
		if err := dashboardScheduler.Shutdown(); err != nil {
			log.Printf("dashboard scheduler shutdown: %v", err)
		}
	}
}
