package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Shahd3/iCare/pkg/entity"
)

type CreateReminderRequest struct {
	MedName    string            `validate:"required,min=1,max=200"`
	Dosage     string            `validate:"max=200"`
	Time       string            `validate:"required,clock12"`
	Recurrence entity.Recurrence `validate:"required,oneof=daily weekly"`
	Days       []string          `validate:"dive,weekday"`
}

// TakenResult reports what one "taken" tap did.
type TakenResult struct {
	ToggledOff    bool                    `json:"toggled_off"`
	Record        *entity.AdherenceRecord `json:"record,omitempty"`
	Reward        float64                 `json:"reward,omitempty"`
	SuggestedTime string                  `json:"suggested_time,omitempty"`
	OffsetMin     int                     `json:"offset_min,omitempty"`
}

type RemindersServiceI interface {
	// Validates the request, assigns a stable id and persists the reminder.
	// Scheduling happens on the next reconciliation pass
	Create(ctx context.Context, req *CreateReminderRequest) (*entity.Reminder, error)
	// Lists reminders in stored order
	List(ctx context.Context) ([]*entity.Reminder, error)
	// Cancels every live schedule ref (best-effort), then removes the reminder
	Delete(ctx context.Context, id uuid.UUID) error
}

type AdherenceServiceI interface {
	// Records a "taken" tap for today, toggling off on a repeated tap.
	// A fresh record runs the offset policy before returning
	RecordTaken(ctx context.Context, idOrName string) (*TakenResult, error)
}

type ReconcilerI interface {
	// Aligns every reminder's schedule refs with the scheduler's live set.
	// Returns true iff at least one reminder was rewritten and persisted
	Reconcile(ctx context.Context) (bool, error)
}
