package shared

// Asynq task types
const (
	TypeRecordAccessLog  = "audit:record_access"
	TypePurgeAccessLogs  = "audit:purge_old"
	TypeRecordEngagement = "analytics:record_engagement"
)

// Asynq queue names
const (
	QueueDefault   = "default"
	QueueAudit     = "audit"
	QueueAnalytics = "analytics"
)

// Content types tracked by the analytics endpoints.
const (
	ContentTypeArticle = "article"
	ContentTypePodcast = "podcast"
)
