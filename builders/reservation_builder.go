package builders

import (
	"time"

	"hms/models"

	"github.com/shopspring/decimal"
)

// ReservationBuilder giúp tạo reservation theo từng bước
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder tạo instance mới của ReservationBuilder
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{},
	}
}

// WithGuest thêm thông tin guest
func (b *ReservationBuilder) WithGuest(guestID uint) *ReservationBuilder {
	b.reservation.GuestID = guestID
	return b
}

// WithRoomType thêm loại phòng
func (b *ReservationBuilder) WithRoomType(roomTypeID uint) *ReservationBuilder {
	b.reservation.RoomTypeID = roomTypeID
	return b
}

// WithStay thêm khoảng ngày lưu trú
func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.reservation.CheckIn = checkIn
	b.reservation.CheckOut = checkOut
	return b
}

// WithNumGuests thêm số khách
func (b *ReservationBuilder) WithNumGuests(numGuests int) *ReservationBuilder {
	b.reservation.NumGuests = numGuests
	return b
}

// WithTotalPrice thêm tổng giá
func (b *ReservationBuilder) WithTotalPrice(totalPrice decimal.Decimal) *ReservationBuilder {
	b.reservation.TotalPrice = totalPrice
	return b
}

// WithStatus thêm trạng thái
func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

// WithSpecialRequests thêm yêu cầu đặc biệt
func (b *ReservationBuilder) WithSpecialRequests(requests string) *ReservationBuilder {
	b.reservation.SpecialRequests = requests
	return b
}

// WithActor thêm người tạo/cập nhật
func (b *ReservationBuilder) WithActor(userID uint) *ReservationBuilder {
	b.reservation.CreatedBy = userID
	b.reservation.UpdatedBy = userID
	return b
}

// Build tạo reservation hoàn chỉnh
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
