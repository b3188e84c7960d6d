package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// recoverJobs 任務 panic 時記錄並復原，不讓整個服務中止
func recoverJobs() cron.JobWrapper {
	return cron.Recover(cron.PrintfLogger(log.StandardLogger()))
}

// StartScheduler 註冊定時任務並啟動；呼叫端負責 Stop
func StartScheduler(spec string, promotions *PromotionService) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(recoverJobs()))

	_, err := c.AddFunc(spec, func() {
		log.Println("Refreshing promotion statuses...")
		n, err := promotions.RefreshStatuses(context.Background())
		if err != nil {
			log.Printf("Failed to refresh promotion statuses: %v", err)
			return
		}
		log.Printf("Promotion statuses refreshed, %d row(s) changed", n)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule promotion sweep %q: %w", spec, err)
	}

	c.Start()
	log.Println("Cron jobs started")
	return c, nil
}
