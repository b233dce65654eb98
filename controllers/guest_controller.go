package controllers

import (
	"strconv"

	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// GuestController xử lý các endpoint guest directory
type GuestController struct {
	guests *services.GuestService
}

func NewGuestController(guests *services.GuestService) *GuestController {
	return &GuestController{guests: guests}
}

// List lấy danh sách guest có phân trang
func (ctl *GuestController) List(c *gin.Context) {
	page, limit := parsePagination(c)

	guests, total, err := ctl.guests.List(page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	responses := make([]dto.GuestResponse, 0, len(guests))
	for i := range guests {
		responses = append(responses, services.ToGuestResponse(&guests[i]))
	}
	response.SuccessWithPagination(c, responses, page, limit, total)
}

// Get lấy một guest theo ID
func (ctl *GuestController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	guest, err := ctl.guests.GetByID(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, services.ToGuestResponse(guest))
}

// Create tạo guest mới
func (ctl *GuestController) Create(c *gin.Context) {
	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := ctl.guests.Create(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, services.ToGuestResponse(guest))
}

// Update cập nhật một phần thông tin guest
func (ctl *GuestController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := ctl.guests.Update(id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, services.ToGuestResponse(guest))
}

// Delete xóa guest, chỉ khi không còn reservation active
func (ctl *GuestController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctl.guests.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}

// Search tìm guest mờ theo tên hoặc email
func (ctl *GuestController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Missing search query")
		return
	}

	limit := 10
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	results, err := ctl.guests.Search(query, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, results)
}
