package dto

// CreateRoomTypeRequest là DTO cho request tạo room type
type CreateRoomTypeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	BasePrice   string   `json:"basePrice" binding:"required"`
	Amenities   []string `json:"amenities"`
}

// UpdateRoomTypeRequest là DTO cho request cập nhật room type
type UpdateRoomTypeRequest struct {
	Description *string  `json:"description"`
	BasePrice   *string  `json:"basePrice"`
	Amenities   []string `json:"amenities"`
}

// RoomTypeResponse là DTO cho response của room type
type RoomTypeResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   string   `json:"basePrice"`
	Amenities   []string `json:"amenities"`
}
