package dto

// CreateGuestRequest là DTO cho request tạo guest
type CreateGuestRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateGuestRequest là DTO cho request cập nhật guest
type UpdateGuestRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// GuestResponse là DTO cho response của guest
type GuestResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// GuestSearchResult là một kết quả tìm kiếm guest kèm điểm khớp
type GuestSearchResult struct {
	Guest GuestResponse `json:"guest"`
	Score int           `json:"score"`
}
