package models

import (
	"hms/constants"
	"hms/errors"
)

// ReservationState định nghĩa interface cho các trạng thái reservation
type ReservationState interface {
	CheckIn(r *Reservation) error
	CheckOut(r *Reservation) error
	Cancel(r *Reservation) error
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) CheckIn(r *Reservation) error {
	r.Status = constants.ReservationStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(r *Reservation) error {
	return errors.InvalidTransition("cannot check out a reservation that has not checked in")
}

func (s *ConfirmedState) Cancel(r *Reservation) error {
	r.Status = constants.ReservationStatusCancelled
	return nil
}

// CheckedInState trạng thái đã nhận phòng
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(r *Reservation) error {
	return errors.InvalidTransition("reservation already checked in")
}

func (s *CheckedInState) CheckOut(r *Reservation) error {
	r.Status = constants.ReservationStatusCheckedOut
	return nil
}

func (s *CheckedInState) Cancel(r *Reservation) error {
	r.Status = constants.ReservationStatusCancelled
	return nil
}

// CheckedOutState trạng thái đã trả phòng (terminal)
type CheckedOutState struct{}

func (s *CheckedOutState) CheckIn(r *Reservation) error {
	return errors.InvalidTransition("reservation already checked out")
}

func (s *CheckedOutState) CheckOut(r *Reservation) error {
	return errors.InvalidTransition("reservation already checked out")
}

func (s *CheckedOutState) Cancel(r *Reservation) error {
	return errors.InvalidTransition("cannot cancel a checked-out reservation")
}

// CancelledState trạng thái đã hủy (terminal)
type CancelledState struct{}

func (s *CancelledState) CheckIn(r *Reservation) error {
	return errors.InvalidTransition("cannot check in a cancelled reservation")
}

func (s *CancelledState) CheckOut(r *Reservation) error {
	return errors.InvalidTransition("cannot check out a cancelled reservation")
}

// Cancel trên reservation đã hủy là no-op
func (s *CancelledState) Cancel(r *Reservation) error {
	return nil
}

// GetReservationState trả về state tương ứng với trạng thái reservation
func GetReservationState(status string) ReservationState {
	switch status {
	case constants.ReservationStatusConfirmed:
		return &ConfirmedState{}
	case constants.ReservationStatusCheckedIn:
		return &CheckedInState{}
	case constants.ReservationStatusCheckedOut:
		return &CheckedOutState{}
	case constants.ReservationStatusCancelled:
		return &CancelledState{}
	default:
		return &ConfirmedState{}
	}
}

// CanTransition kiểm tra một chuyển trạng thái trực tiếp có hợp lệ không
func CanTransition(r *Reservation, target string) error {
	if r.Status == target {
		return nil
	}
	state := GetReservationState(r.Status)
	probe := *r
	switch target {
	case constants.ReservationStatusCheckedIn:
		return state.CheckIn(&probe)
	case constants.ReservationStatusCheckedOut:
		return state.CheckOut(&probe)
	case constants.ReservationStatusCancelled:
		return state.Cancel(&probe)
	case constants.ReservationStatusConfirmed:
		return errors.InvalidTransition("cannot move a reservation back to confirmed")
	default:
		return errors.Validation("unknown reservation status: " + target)
	}
}
