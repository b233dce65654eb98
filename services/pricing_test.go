package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	cases := []struct {
		checkIn  string
		checkOut string
		want     int
	}{
		{"2026-03-01", "2026-03-02", 1},
		{"2026-03-01", "2026-03-07", 6},
		{"2026-03-01", "2026-03-08", 7},
		{"2026-12-28", "2027-01-03", 6},
	}
	for _, c := range cases {
		got := Nights(date(c.checkIn), date(c.checkOut))
		if got != c.want {
			t.Errorf("Nights(%s, %s) = %d, want %d", c.checkIn, c.checkOut, got, c.want)
		}
	}
}

func TestComputeShortStay(t *testing.T) {
	s := NewPricingService()
	base := decimal.RequireFromString("100.00")

	total := s.Compute(base, date("2026-03-01"), date("2026-03-07"))
	if got := RoundMoney(total).StringFixed(2); got != "600.00" {
		t.Errorf("6 nights at 100.00 = %s, want 600.00", got)
	}
}

func TestComputeLongStayDiscount(t *testing.T) {
	s := NewPricingService()
	base := decimal.RequireFromString("100.00")

	// 7 đêm trở lên được giảm 10%
	total := s.Compute(base, date("2026-03-01"), date("2026-03-08"))
	if got := RoundMoney(total).StringFixed(2); got != "630.00" {
		t.Errorf("7 nights at 100.00 = %s, want 630.00", got)
	}
}

func TestComputeDiscountBoundary(t *testing.T) {
	s := NewPricingService()
	base := decimal.RequireFromString("80.00")

	// 6 đêm: chưa giảm
	if got := RoundMoney(s.Compute(base, date("2026-05-01"), date("2026-05-07"))).StringFixed(2); got != "480.00" {
		t.Errorf("6 nights at 80.00 = %s, want 480.00", got)
	}
	// 8 đêm: có giảm
	if got := RoundMoney(s.Compute(base, date("2026-05-01"), date("2026-05-09"))).StringFixed(2); got != "576.00" {
		t.Errorf("8 nights at 80.00 = %s, want 576.00", got)
	}
}

func TestComputeNoFloatDrift(t *testing.T) {
	s := NewPricingService()
	// 0.10 × 3 phải ra đúng 0.30, không phải 0.30000000000000004
	base := decimal.RequireFromString("0.10")
	total := s.Compute(base, date("2026-03-01"), date("2026-03-04"))
	if got := total.StringFixed(2); got != "0.30" {
		t.Errorf("3 nights at 0.10 = %s, want 0.30", got)
	}
}

func TestRoundMoneyHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1.00"},
		{"566.10", "566.10"},
		{"629.9999", "630.00"},
	}
	for _, c := range cases {
		got := RoundMoney(decimal.RequireFromString(c.in)).StringFixed(2)
		if got != c.want {
			t.Errorf("RoundMoney(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}
