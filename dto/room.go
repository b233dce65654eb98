package dto

// CreateRoomRequest là DTO cho request tạo room
type CreateRoomRequest struct {
	Number     string `json:"number" binding:"required"`
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// UpdateRoomRequest là DTO cho request cập nhật room
type UpdateRoomRequest struct {
	Number     *string `json:"number"`
	RoomTypeID *uint   `json:"roomTypeId"`
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
}

// RoomResponse là DTO cho response của room
type RoomResponse struct {
	ID           uint   `json:"id"`
	Number       string `json:"number"`
	RoomTypeID   uint   `json:"roomTypeId"`
	RoomTypeName string `json:"roomTypeName"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}
