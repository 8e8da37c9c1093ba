package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"newsportal-backend/internal/config"
	auditModel "newsportal-backend/internal/domains/audit/model"
	"newsportal-backend/internal/shared"
	"newsportal-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisCfg config.RedisConfig, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     redisCfg.Host,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterMaintenanceJobs() error {
	return s.registerPurgeAccessLogsJob()
}

// ================================================
// JOB: Purge Old Access Logs (Daily at 3 AM)
// ================================================
// Runs during low-traffic hours. The retention window is configurable
// because compliance requirements differ per deployment.
func (s *Scheduler) registerPurgeAccessLogsJob() error {
	payload, err := json.Marshal(auditModel.PurgeAccessLogsPayload{
		RetentionDays: s.jobConfig.AccessLogRetentionDays,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePurgeAccessLogs, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *", // Daily at 3 AM
		task,
		asynq.Queue(shared.QueueAudit),
		asynq.MaxRetry(1),
		asynq.Timeout(10*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register PurgeAccessLogs job", err)
		return err
	}

	logger.Info("✓ Registered PurgeAccessLogs: daily at 3 AM", map[string]interface{}{
		"retention_days": s.jobConfig.AccessLogRetentionDays,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
