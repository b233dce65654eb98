package dto

// CreateReservationRequest là DTO cho request tạo reservation
type CreateReservationRequest struct {
	GuestName       string `json:"guestName" binding:"required"`
	GuestEmail      string `json:"guestEmail" binding:"required"`
	GuestPhone      string `json:"guestPhone"`
	RoomTypeID      uint   `json:"roomTypeId" binding:"required"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	NumGuests       int    `json:"numGuests" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

// UpdateReservationRequest là DTO cho request cập nhật reservation, mọi field đều tùy chọn
type UpdateReservationRequest struct {
	RoomTypeID      *uint   `json:"roomTypeId"`
	RoomID          *uint   `json:"roomId"`
	CheckIn         *string `json:"checkIn"`
	CheckOut        *string `json:"checkOut"`
	NumGuests       *int    `json:"numGuests"`
	Status          *string `json:"status"`
	SpecialRequests *string `json:"specialRequests"`
}

// ReservationResponse là DTO cho response của reservation
type ReservationResponse struct {
	ID              uint   `json:"id"`
	GuestID         uint   `json:"guestId"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	RoomTypeID      uint   `json:"roomTypeId"`
	RoomTypeName    string `json:"roomTypeName"`
	RoomID          *uint  `json:"roomId,omitempty"`
	RoomNumber      string `json:"roomNumber,omitempty"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	NumGuests       int    `json:"numGuests"`
	TotalPrice      string `json:"totalPrice"`
	Status          string `json:"status"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// AvailabilityResponse là DTO cho response kiểm tra phòng trống
type AvailabilityResponse struct {
	RoomTypeID     uint   `json:"roomTypeId"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	AvailableCount int    `json:"availableCount"`
}
