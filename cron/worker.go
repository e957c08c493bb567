package cron

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// InitRefreshWorker starts the periodic data refresh tick. The tick itself
// only logs; it exists so operators can see the process is alive.
func InitRefreshWorker() *gocron.Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.Every(5).Minutes().Do(func() {
		utils.GetLogger().Info("Refreshing in-memory data...")
	})
	s.StartAsync()
	return s
}
