package service

import (
	"errors"
	"testing"
)

func completeDraft() Draft {
	return Draft{
		MeetingTypeID: "discovery",
		Date:          "2026-09-15",
		Slot:          "11:00",
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
	}
}

func TestTransition_HappyPath(t *testing.T) {
	draft := completeDraft()

	step, err := Transition(StepSelectType, draft, EventConfirmType)
	if err != nil || step != StepSelectSchedule {
		t.Fatalf("confirm type: step=%v err=%v", step, err)
	}

	step, err = Transition(step, draft, EventConfirmSchedule)
	if err != nil || step != StepEnterContact {
		t.Fatalf("confirm schedule: step=%v err=%v", step, err)
	}

	step, err = Transition(step, draft, EventSubmitSucceeded)
	if err != nil || step != StepConfirmed {
		t.Fatalf("submit: step=%v err=%v", step, err)
	}
}

func TestTransition_ConfirmTypeWithoutSelection(t *testing.T) {
	step, err := Transition(StepSelectType, Draft{}, EventConfirmType)
	if !errors.Is(err, ErrTypeNotSelected) {
		t.Fatalf("err = %v, want ErrTypeNotSelected", err)
	}
	if step != StepSelectType {
		t.Fatalf("step changed on rejected transition: %v", step)
	}
}

func TestTransition_ScheduleGuard(t *testing.T) {
	cases := []Draft{
		{MeetingTypeID: "discovery"},                        // neither
		{MeetingTypeID: "discovery", Date: "2026-09-15"},    // missing slot
		{MeetingTypeID: "discovery", Slot: "11:00"},         // missing date
	}

	for _, draft := range cases {
		step, err := Transition(StepSelectSchedule, draft, EventConfirmSchedule)
		if !errors.Is(err, ErrScheduleIncomplete) {
			t.Fatalf("draft %+v: err = %v, want ErrScheduleIncomplete", draft, err)
		}
		if step != StepSelectSchedule {
			t.Fatalf("draft %+v: step changed to %v", draft, step)
		}
	}
}

func TestTransition_BackwardSteps(t *testing.T) {
	step, err := Transition(StepEnterContact, completeDraft(), EventBack)
	if err != nil || step != StepSelectSchedule {
		t.Fatalf("back from contact: step=%v err=%v", step, err)
	}

	step, err = Transition(StepSelectSchedule, completeDraft(), EventBack)
	if err != nil || step != StepSelectType {
		t.Fatalf("back from schedule: step=%v err=%v", step, err)
	}
}

func TestTransition_SubmitFailureRetainsState(t *testing.T) {
	step, err := Transition(StepEnterContact, completeDraft(), EventSubmitFailed)
	if err != nil {
		t.Fatalf("submit failure must be a no-op transition, got err=%v", err)
	}
	if step != StepEnterContact {
		t.Fatalf("step = %v, want StepEnterContact", step)
	}
}

func TestTransition_ConfirmedIsTerminalExceptRestart(t *testing.T) {
	for _, event := range []WizardEvent{EventConfirmType, EventConfirmSchedule, EventBack, EventSubmitSucceeded, EventSubmitFailed} {
		step, err := Transition(StepConfirmed, completeDraft(), event)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("event %v: err = %v, want ErrInvalidTransition", event, err)
		}
		if step != StepConfirmed {
			t.Fatalf("event %v moved terminal state to %v", event, step)
		}
	}

	step, err := Transition(StepConfirmed, completeDraft(), EventRestart)
	if err != nil || step != StepSelectType {
		t.Fatalf("restart: step=%v err=%v", step, err)
	}
}

func TestTransition_NoStepSkipping(t *testing.T) {
	if _, err := Transition(StepSelectType, completeDraft(), EventConfirmSchedule); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("schedule confirm from step 1: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := Transition(StepSelectSchedule, completeDraft(), EventSubmitSucceeded); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("submit from step 2: err = %v, want ErrInvalidTransition", err)
	}
}

func TestDraft_Reset(t *testing.T) {
	if got := completeDraft().Reset(); got != (Draft{}) {
		t.Fatalf("Reset returned non-empty draft: %+v", got)
	}
}
