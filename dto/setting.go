package dto

// UpdateSettingRequest là DTO cho request cập nhật setting
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// SettingResponse là DTO cho response của setting
type SettingResponse struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt"`
}
