package utils

import "github.com/google/uuid"

// NewRunID returns a random identifier correlating one orchestration run
// across its report and log lines.
func NewRunID() string {
	return uuid.NewString()
}
