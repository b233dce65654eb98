package response

import (
	"net/http"

	apperrors "hms/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "success",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Error trả về response lỗi
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "server error",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "unauthorized",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "forbidden",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "not found",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError map AppError sang HTTP response tương ứng
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, Response{Code: 0, Mess: appErr.Message})
	case apperrors.ErrCodeConflict, apperrors.ErrCodeDuplicate:
		c.JSON(http.StatusConflict, Response{Code: 0, Mess: appErr.Message})
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken, apperrors.ErrCodeMissingToken:
		c.JSON(http.StatusUnauthorized, Response{Code: 0, Mess: appErr.Message})
	case apperrors.ErrCodeForbidden:
		c.JSON(http.StatusForbidden, Response{Code: 0, Mess: appErr.Message})
	case apperrors.ErrCodeInternal:
		ServerError(c)
	default:
		// validation, no-availability, invalid-transition
		c.JSON(http.StatusBadRequest, Response{Code: 0, Mess: appErr.Message})
	}
}
