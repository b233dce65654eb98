package dto

// CreateServiceRequest là DTO cho request tạo dịch vụ
type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	Price       string `json:"price" binding:"required"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// ServiceResponse là DTO cho response của dịch vụ
type ServiceResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Price       string `json:"price"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}
