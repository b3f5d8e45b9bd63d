package tasks

import (
	"encoding/json"
	"time"

	"cleancare/models"

	"github.com/hibiken/asynq"
)

const TypePickupReminder = "pickup:reminder"

// NewPickupReminderTask builds a reminder task scheduled for fireAt.
func NewPickupReminderTask(payload models.PickupReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePickupReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues pickup reminders. The order service depends on this
// rather than on asynq directly.
type Scheduler interface {
	SchedulePickupReminder(payload models.PickupReminderPayload, fireAt time.Time) error
}

// AsynqScheduler enqueues reminders on the Redis-backed task queue.
type AsynqScheduler struct {
	Client *asynq.Client
}

func (s *AsynqScheduler) SchedulePickupReminder(payload models.PickupReminderPayload, fireAt time.Time) error {
	task, opts, err := NewPickupReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
