package validator

import (
	"regexp"
	"time"

	"hms/constants"
	"hms/dto"
	"hms/errors"

	"github.com/shopspring/decimal"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email: "+email, nil)
	}
	return nil
}

// ParseDate parse ngày dạng YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(constants.DateFormat, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid date: "+value, err)
	}
	return d, nil
}

// Today trả về ngày hiện tại đã bỏ phần giờ
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateStayRange parse và kiểm tra khoảng ngày đặt phòng:
// checkIn < checkOut và checkIn không nằm trong quá khứ (so sánh theo ngày).
func ValidateStayRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.Validation("check-out date must be after check-in date")
	}
	if checkIn.Before(Today()) {
		return time.Time{}, time.Time{}, errors.Validation("check-in date must not be in the past")
	}
	return checkIn, checkOut, nil
}

// ParseMoney parse số tiền dạng chuỗi thập phân
func ParseMoney(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.NewAppError(errors.ErrCodeInvalidAmount, "invalid amount: "+value, err)
	}
	return d, nil
}

// ParsePositiveMoney parse số tiền và yêu cầu > 0
func ParsePositiveMoney(value string) (decimal.Decimal, error) {
	d, err := ParseMoney(value)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, errors.NewAppError(errors.ErrCodeInvalidAmount, "amount must be positive", nil)
	}
	return d, nil
}

// ValidateCreateReservation kiểm tra request tạo reservation
func ValidateCreateReservation(req *dto.CreateReservationRequest) error {
	if req.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "guest name is required", nil)
	}
	if err := ValidateEmail(req.GuestEmail); err != nil {
		return err
	}
	if req.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room type is required", nil)
	}
	if req.CheckIn == "" || req.CheckOut == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "check-in and check-out dates are required", nil)
	}
	if req.NumGuests < 1 {
		return errors.Validation("number of guests must be at least 1")
	}
	_, _, err := ValidateStayRange(req.CheckIn, req.CheckOut)
	return err
}

// ValidateCreateGuest kiểm tra request tạo guest
func ValidateCreateGuest(req *dto.CreateGuestRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}
	return ValidateEmail(req.Email)
}

// ValidateRoomStatus kiểm tra trạng thái phòng hợp lệ
func ValidateRoomStatus(status string) error {
	switch status {
	case constants.RoomStatusAvailable, constants.RoomStatusOccupied, constants.RoomStatusMaintenance:
		return nil
	}
	return errors.Validation("invalid room status: " + status)
}
