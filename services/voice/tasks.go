package voice

import (
	"encoding/json"
	"fmt"

	"azura/models"

	"github.com/hibiken/asynq"
)

const TypeVoiceConfirmation = "voice:confirmation"

// NewVoiceConfirmationTask wraps a booking into the background synthesis task.
func NewVoiceConfirmationTask(booking models.Booking) (*asynq.Task, error) {
	b, err := json.Marshal(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal voice confirmation payload: %w", err)
	}
	return asynq.NewTask(TypeVoiceConfirmation, b), nil
}

// AsynqDispatcher enqueues voice confirmations onto the task queue. Enqueue
// returns as soon as the task is queued; synthesis happens in the worker.
type AsynqDispatcher struct {
	Client *asynq.Client
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

func (d *AsynqDispatcher) DispatchConfirmation(booking models.Booking) error {
	task, err := NewVoiceConfirmationTask(booking)
	if err != nil {
		return err
	}
	if _, err := d.Client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue voice confirmation: %w", err)
	}
	return nil
}
