package tasks

import (
	"encoding/json"
	"time"

	"gatherly/models"

	"github.com/hibiken/asynq"
)

const TypeOutingReminder = "outing:reminder"

// NewOutingReminderTask builds the asynq task that fires a reminder push to
// every group member shortly before the outing starts.
func NewOutingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeOutingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
