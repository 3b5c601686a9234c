package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/metrics"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/store"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/wizard"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron     *cron.Cron
	sessions *wizard.Manager
	leads    store.Store
	metrics  *metrics.Metrics
	logger   *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(sessions *wizard.Manager, leads store.Store, m *metrics.Metrics, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:     cron.New(),
		sessions: sessions,
		leads:    leads,
		metrics:  m,
		logger:   logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Every 5 minutes: purge expired wizard sessions
	_, err := cm.cron.AddFunc("*/5 * * * *", func() {
		purged := cm.sessions.PurgeExpired()
		if purged > 0 {
			cm.logger.Printf("🧹 Purged %d expired wizard sessions", purged)
		}
		if cm.metrics != nil {
			cm.metrics.UpdateWizardSessions(float64(cm.sessions.Count()))
		}
	})
	if err != nil {
		return err
	}

	// Daily at 4 AM: log lead and session statistics
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		cm.logger.Println("🕐 Logging lead statistics...")

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		total, err := cm.leads.Count(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to count stored leads: %v", err)
			return
		}

		cm.logger.Printf("📊 Lead Statistics:")
		cm.logger.Printf("  Total leads: %d", total)
		cm.logger.Printf("  Active wizard sessions: %d", cm.sessions.Count())
		for kind, count := range cm.sessions.Kinds() {
			cm.logger.Printf("  Sessions for %s: %d", kind, count)
		}
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Every 5 minutes: Purge expired wizard sessions")
	cm.logger.Println("  - Daily at 4 AM: Log lead statistics")

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
