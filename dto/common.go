package dto

// Actor là người thực hiện thao tác, lấy từ token của request
type Actor struct {
	UserID uint `json:"userId"`
	Role   int  `json:"role"`
}

// IsZero kiểm tra actor rỗng (request không có token)
func (a Actor) IsZero() bool {
	return a.UserID == 0 && a.Role == 0
}
