package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CreateState is the Create screen. Pending marks a posted result the next
// mount must show instead of resetting.
type CreateState struct {
	Form    *FormState
	Dialog  StatusDialog
	Pending bool
}

func NewCreateState(dialogTitle string) *CreateState {
	return &CreateState{
		Form:   NewFormState(ReviewFields...),
		Dialog: StatusDialog{Title: dialogTitle},
	}
}

func (c *CreateState) Reset() {
	c.Form.Reset()
	c.Dialog.Close()
	c.Dialog.Message = ""
	c.Pending = false
}

// Session is one browser's view state. The embedded mutex guards Create and
// Read; it is never held across backend calls.
type Session struct {
	BaseSimple
	sync.Mutex
	Token      uuid.UUID
	LastSeenAt time.Time
	Create     *CreateState
	Read       *ListState
}
