package domain

import "time"

type CronJobStatus struct {
	Type            string     `json:"type"`
	Enabled         bool       `json:"enabled"`
	Schedule        string     `json:"schedule"`
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at"`
	LastCompletedAt *time.Time `json:"last_completed_at"`
	LastError       *string    `json:"last_error"`
}
