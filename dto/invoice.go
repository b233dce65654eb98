package dto

// CreateInvoiceRequest là DTO cho request tạo invoice
type CreateInvoiceRequest struct {
	ReservationID uint `json:"reservationId" binding:"required"`
}

// InvoiceResponse là DTO cho response của invoice
type InvoiceResponse struct {
	ID            uint   `json:"id"`
	ReservationID uint   `json:"reservationId"`
	GuestName     string `json:"guestName,omitempty"`
	RoomTypeName  string `json:"roomTypeName,omitempty"`
	RoomNumber    string `json:"roomNumber,omitempty"`
	CheckIn       string `json:"checkIn,omitempty"`
	CheckOut      string `json:"checkOut,omitempty"`
	Subtotal      string `json:"subtotal"`
	Tax           string `json:"tax"`
	Total         string `json:"total"`
	PaidSum       string `json:"paidSum,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// RecordPaymentRequest là DTO cho request ghi nhận thanh toán
type RecordPaymentRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Method    string `json:"method" binding:"required"`
	Reference string `json:"reference"`
}

// PaymentResponse là DTO cho response của payment
type PaymentResponse struct {
	ID            uint   `json:"id"`
	InvoiceID     uint   `json:"invoiceId"`
	Amount        string `json:"amount"`
	Method        string `json:"method"`
	Reference     string `json:"reference"`
	PaidAt        string `json:"paidAt"`
	InvoiceStatus string `json:"invoiceStatus,omitempty"`
}
