package main

import (
	"github.com/hibiken/asynq"

	analyticsJob "newsportal-backend/internal/domains/analytics/job"
	auditJob "newsportal-backend/internal/domains/audit/job"
	"newsportal-backend/internal/shared"
	"newsportal-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Audit handlers
	recordAccess *auditJob.RecordAccessHandler
	purgeAccess  *auditJob.PurgeHandler

	// Analytics handlers
	recordEngagement *analyticsJob.RecordEngagementHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		recordAccess:     auditJob.NewRecordAccessHandler(c.AccessLogRepo),
		purgeAccess:      auditJob.NewPurgeHandler(c.AccessLogRepo),
		recordEngagement: analyticsJob.NewRecordEngagementHandler(c.AnalyticsRepo),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Audit tasks
	mux.HandleFunc(shared.TypeRecordAccessLog, h.recordAccess.ProcessTask)
	mux.HandleFunc(shared.TypePurgeAccessLogs, h.purgeAccess.ProcessTask)

	// Analytics tasks
	mux.HandleFunc(shared.TypeRecordEngagement, h.recordEngagement.ProcessTask)
}
