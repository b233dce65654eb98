package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// Giảm giá 10% cho kỳ lưu trú dài từ 7 đêm
const longStayNights = 7

var longStayMultiplier = decimal.RequireFromString("0.90")

// PricingService tính giá cho một kỳ lưu trú
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// Nights tính số đêm giữa hai ngày (so sánh theo ngày, không theo giờ)
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// Compute tính tổng giá: basePrice × số đêm, áp dụng giảm giá dài ngày.
// Kết quả chưa làm tròn; chỉ làm tròn khi ghi xuống store.
func (s *PricingService) Compute(basePrice decimal.Decimal, checkIn, checkOut time.Time) decimal.Decimal {
	nights := Nights(checkIn, checkOut)
	total := basePrice.Mul(decimal.NewFromInt(int64(nights)))
	if nights >= longStayNights {
		total = total.Mul(longStayMultiplier)
	}
	return total
}

// RoundMoney làm tròn half-up về 2 chữ số thập phân, dùng tại điểm ghi DB
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
