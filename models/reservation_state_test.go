package models

import (
	"testing"

	"hms/constants"
	"hms/errors"
)

func TestConfirmedTransitions(t *testing.T) {
	r := &Reservation{Status: constants.ReservationStatusConfirmed}
	state := GetReservationState(r.Status)

	if err := state.CheckOut(r); err == nil {
		t.Error("confirmed -> checked-out should be rejected")
	}

	if err := state.CheckIn(r); err != nil {
		t.Fatalf("confirmed -> checked-in failed: %v", err)
	}
	if r.Status != constants.ReservationStatusCheckedIn {
		t.Errorf("status = %q, want checked-in", r.Status)
	}
}

func TestCheckedInTransitions(t *testing.T) {
	r := &Reservation{Status: constants.ReservationStatusCheckedIn}
	state := GetReservationState(r.Status)

	if err := state.CheckIn(r); err == nil {
		t.Error("double check-in should be rejected")
	}

	if err := state.CheckOut(r); err != nil {
		t.Fatalf("checked-in -> checked-out failed: %v", err)
	}
	if r.Status != constants.ReservationStatusCheckedOut {
		t.Errorf("status = %q, want checked-out", r.Status)
	}
}

func TestCheckedInCanCancel(t *testing.T) {
	r := &Reservation{Status: constants.ReservationStatusCheckedIn}
	state := GetReservationState(r.Status)

	if err := state.Cancel(r); err != nil {
		t.Fatalf("checked-in -> cancelled failed: %v", err)
	}
	if r.Status != constants.ReservationStatusCancelled {
		t.Errorf("status = %q, want cancelled", r.Status)
	}
}

func TestCheckedOutIsTerminal(t *testing.T) {
	r := &Reservation{Status: constants.ReservationStatusCheckedOut}
	state := GetReservationState(r.Status)

	if err := state.CheckIn(r); err == nil {
		t.Error("checked-out -> checked-in should be rejected")
	}
	if err := state.Cancel(r); err == nil {
		t.Error("checked-out -> cancelled should be rejected")
	}
	if r.Status != constants.ReservationStatusCheckedOut {
		t.Errorf("terminal status changed to %q", r.Status)
	}
}

func TestCancelledCancelIsNoop(t *testing.T) {
	r := &Reservation{Status: constants.ReservationStatusCancelled}
	state := GetReservationState(r.Status)

	if err := state.Cancel(r); err != nil {
		t.Errorf("cancelling a cancelled reservation should succeed, got %v", err)
	}
	if err := state.CheckIn(r); err == nil {
		t.Error("cancelled -> checked-in should be rejected")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from   string
		to     string
		wantOK bool
	}{
		{constants.ReservationStatusConfirmed, constants.ReservationStatusCheckedIn, true},
		{constants.ReservationStatusConfirmed, constants.ReservationStatusCancelled, true},
		{constants.ReservationStatusConfirmed, constants.ReservationStatusCheckedOut, false},
		{constants.ReservationStatusCheckedIn, constants.ReservationStatusCheckedOut, true},
		{constants.ReservationStatusCheckedOut, constants.ReservationStatusConfirmed, false},
		{constants.ReservationStatusCancelled, constants.ReservationStatusCheckedIn, false},
		{constants.ReservationStatusCancelled, constants.ReservationStatusCancelled, true},
	}
	for _, c := range cases {
		r := &Reservation{Status: c.from}
		err := CanTransition(r, c.to)
		if c.wantOK && err != nil {
			t.Errorf("CanTransition(%s -> %s) = %v, want nil", c.from, c.to, err)
		}
		if !c.wantOK && err == nil {
			t.Errorf("CanTransition(%s -> %s) = nil, want error", c.from, c.to)
		}
		// Probe không được làm đổi trạng thái thật
		if r.Status != c.from {
			t.Errorf("CanTransition mutated status from %q to %q", c.from, r.Status)
		}
	}
}

func TestInvalidTransitionErrorCode(t *testing.T) {
	r := &Reservation{Status: constants.ReservationStatusCheckedOut}
	err := CanTransition(r, constants.ReservationStatusCancelled)
	if !errors.HasCode(err, errors.ErrCodeInvalidTransition) {
		t.Errorf("expected invalid transition code, got %v", err)
	}
}
