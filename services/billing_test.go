package services

import (
	"testing"

	"hms/constants"
	"hms/errors"

	"github.com/shopspring/decimal"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTax(t *testing.T) {
	cases := []struct {
		subtotal string
		rate     string
		want     string
	}{
		{"600.00", "0.10", "60.00"},
		{"566.10", "0.08", "45.29"},
		{"600.00", "0", "0.00"},
		{"0.01", "0.10", "0.00"},
	}
	for _, c := range cases {
		got := ComputeTax(money(c.subtotal), money(c.rate)).StringFixed(2)
		if got != c.want {
			t.Errorf("ComputeTax(%s, %s) = %s, want %s", c.subtotal, c.rate, got, c.want)
		}
	}
}

func TestNextInvoiceStatus(t *testing.T) {
	total := money("660.00")

	if got := NextInvoiceStatus(money("0"), total); got != constants.InvoiceStatusUnpaid {
		t.Errorf("no payments: status = %s, want unpaid", got)
	}
	if got := NextInvoiceStatus(money("100.00"), total); got != constants.InvoiceStatusPartial {
		t.Errorf("partial payment: status = %s, want partial", got)
	}
	if got := NextInvoiceStatus(money("660.00"), total); got != constants.InvoiceStatusPaid {
		t.Errorf("exact payment: status = %s, want paid", got)
	}
	if got := NextInvoiceStatus(money("700.00"), total); got != constants.InvoiceStatusPaid {
		t.Errorf("over total: status = %s, want paid", got)
	}
}

func TestExceedsTotal(t *testing.T) {
	total := money("660.00")

	if ExceedsTotal(money("0"), money("660.00"), total) {
		t.Error("exact payment should be accepted")
	}
	if ExceedsTotal(money("600.00"), money("60.00"), total) {
		t.Error("final payment to exact total should be accepted")
	}
	// Dung sai 1 cent cho chênh lệch làm tròn
	if ExceedsTotal(money("600.00"), money("60.01"), total) {
		t.Error("payment within the 1 cent tolerance should be accepted")
	}
	if !ExceedsTotal(money("600.00"), money("60.02"), total) {
		t.Error("payment past the tolerance should be rejected")
	}
	if !ExceedsTotal(money("660.00"), money("100.00"), total) {
		t.Error("payment on a settled invoice should be rejected")
	}
}

// Thanh toán vượt hóa đơn là lỗi nhập liệu, cùng nhóm với số tiền âm,
// không phải lỗi tranh chấp trạng thái.
func TestCheckPaymentCap(t *testing.T) {
	total := money("660.00")

	if err := CheckPaymentCap(money("600.00"), money("60.00"), total); err != nil {
		t.Fatalf("final payment to exact total rejected: %v", err)
	}

	err := CheckPaymentCap(money("600.00"), money("100.00"), total)
	if err == nil {
		t.Fatal("overpayment should be rejected")
	}
	if !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("overpayment error code = %v, want %s", errors.GetAppError(err).Code, errors.ErrCodeValidation)
	}
}
