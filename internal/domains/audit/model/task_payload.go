package model

import "time"

// RecordAccessPayload is the asynq task payload for an audit write.
type RecordAccessPayload struct {
	ActorID    string    `json:"actor_id,omitempty"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	Success    bool      `json:"success"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PurgeAccessLogsPayload is the payload for the scheduled retention purge.
type PurgeAccessLogsPayload struct {
	RetentionDays int `json:"retention_days"`
}
