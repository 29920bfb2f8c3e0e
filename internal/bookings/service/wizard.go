package service

import "errors"

// WizardStep is a state of the booking wizard. The wizard is a strict linear
// flow; Confirmed is terminal and only leaves via an explicit restart.
type WizardStep int

const (
	StepSelectType WizardStep = iota + 1
	StepSelectSchedule
	StepEnterContact
	StepConfirmed
)

// String returns the step name for logging and API payloads.
func (s WizardStep) String() string {
	switch s {
	case StepSelectType:
		return "select_type"
	case StepSelectSchedule:
		return "select_schedule"
	case StepEnterContact:
		return "enter_contact"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// WizardEvent drives a transition between wizard steps.
type WizardEvent int

const (
	EventConfirmType WizardEvent = iota + 1
	EventConfirmSchedule
	EventBack
	EventSubmitSucceeded
	EventSubmitFailed
	EventRestart
)

// Transition guard errors. These are sentinel values, not apperr types: the
// wizard is pure domain logic and the HTTP layer decides how to surface them.
var (
	ErrInvalidTransition   = errors.New("invalid wizard transition")
	ErrTypeNotSelected     = errors.New("meeting type not selected")
	ErrScheduleIncomplete  = errors.New("date and time slot are required")
	ErrContactIncomplete   = errors.New("contact details are incomplete")
)

// Draft is the mutable wizard state for one visitor session. It is never
// persisted; only the terminal submit writes a booking row.
type Draft struct {
	MeetingTypeID string
	Date          string // 2006-01-02, empty until chosen
	Slot          string // 15:04, empty until chosen

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Notes     string
}

// HasSchedule reports whether both a date and a time slot are chosen.
func (d Draft) HasSchedule() bool {
	return d.Date != "" && d.Slot != ""
}

// HasContact reports whether the minimum contact fields are filled. Email
// format is checked by request validation, not here.
func (d Draft) HasContact() bool {
	return d.FirstName != "" && d.LastName != "" && d.Email != ""
}

// Reset returns an empty draft, used when the visitor restarts the wizard.
func (d Draft) Reset() Draft {
	return Draft{}
}

// Transition applies an event to the wizard at the given step and returns
// the next step. A guard failure returns the current step unchanged along
// with the reason; callers surface the reason and keep the draft.
func Transition(step WizardStep, draft Draft, event WizardEvent) (WizardStep, error) {
	switch step {
	case StepSelectType:
		if event == EventConfirmType {
			if draft.MeetingTypeID == "" {
				return step, ErrTypeNotSelected
			}
			return StepSelectSchedule, nil
		}

	case StepSelectSchedule:
		switch event {
		case EventBack:
			return StepSelectType, nil
		case EventConfirmSchedule:
			if !draft.HasSchedule() {
				return step, ErrScheduleIncomplete
			}
			return StepEnterContact, nil
		}

	case StepEnterContact:
		switch event {
		case EventBack:
			return StepSelectSchedule, nil
		case EventSubmitSucceeded:
			if !draft.HasContact() {
				return step, ErrContactIncomplete
			}
			return StepConfirmed, nil
		case EventSubmitFailed:
			// Draft retained, error surfaced by the caller; no state change.
			return step, nil
		}

	case StepConfirmed:
		if event == EventRestart {
			return StepSelectType, nil
		}
	}

	return step, ErrInvalidTransition
}
