package validator

import (
	"testing"
	"time"

	"hms/constants"
	"hms/dto"
	"hms/errors"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"guest@example.com",
		"a.b-c+tag@sub.domain.vn",
	}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@domain",
		"@nouser.com",
		"spaces in@mail.com",
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.September || d.Day() != 15 {
		t.Errorf("parsed wrong date: %v", d)
	}

	for _, bad := range []string{"15/09/2026", "2026-13-01", "2026-02-30", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) = nil, want error", bad)
		}
		if _, err := ParseDate(bad); !errors.HasCode(err, errors.ErrCodeInvalidDate) {
			t.Errorf("ParseDate(%q) should carry invalid date code", bad)
		}
	}
}

func TestValidateStayRange(t *testing.T) {
	futureIn := Today().AddDate(0, 1, 0).Format(constants.DateFormat)
	futureOut := Today().AddDate(0, 1, 3).Format(constants.DateFormat)

	checkIn, checkOut, err := ValidateStayRange(futureIn, futureOut)
	if err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if !checkOut.After(checkIn) {
		t.Error("parsed checkout should be after checkin")
	}
}

func TestValidateStayRangeRejectsReversed(t *testing.T) {
	in := Today().AddDate(0, 1, 3).Format(constants.DateFormat)
	out := Today().AddDate(0, 1, 0).Format(constants.DateFormat)

	if _, _, err := ValidateStayRange(in, out); err == nil {
		t.Error("check-out before check-in should be rejected")
	}
}

func TestValidateStayRangeRejectsZeroNights(t *testing.T) {
	day := Today().AddDate(0, 1, 0).Format(constants.DateFormat)
	if _, _, err := ValidateStayRange(day, day); err == nil {
		t.Error("zero-night stay should be rejected")
	}
}

func TestValidateStayRangeRejectsPast(t *testing.T) {
	in := Today().AddDate(0, 0, -10).Format(constants.DateFormat)
	out := Today().AddDate(0, 0, -7).Format(constants.DateFormat)

	if _, _, err := ValidateStayRange(in, out); err == nil {
		t.Error("check-in in the past should be rejected")
	}
}

func TestParsePositiveMoney(t *testing.T) {
	d, err := ParsePositiveMoney("120.50")
	if err != nil {
		t.Fatalf("ParsePositiveMoney failed: %v", err)
	}
	if d.StringFixed(2) != "120.50" {
		t.Errorf("parsed %s, want 120.50", d.StringFixed(2))
	}

	for _, bad := range []string{"", "abc", "0", "-5.00"} {
		if _, err := ParsePositiveMoney(bad); err == nil {
			t.Errorf("ParsePositiveMoney(%q) = nil, want error", bad)
		}
	}
}

func TestValidateCreateReservation(t *testing.T) {
	in := Today().AddDate(0, 1, 0).Format(constants.DateFormat)
	out := Today().AddDate(0, 1, 2).Format(constants.DateFormat)

	req := &dto.CreateReservationRequest{
		GuestName:  "Nguyen Van A",
		GuestEmail: "a@example.com",
		RoomTypeID: 1,
		CheckIn:    in,
		CheckOut:   out,
		NumGuests:  2,
	}
	if err := ValidateCreateReservation(req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	noGuests := *req
	noGuests.NumGuests = 0
	if err := ValidateCreateReservation(&noGuests); err == nil {
		t.Error("zero guests should be rejected")
	}

	badEmail := *req
	badEmail.GuestEmail = "not-an-email"
	if err := ValidateCreateReservation(&badEmail); err == nil {
		t.Error("invalid email should be rejected")
	}
}
