package controllers

import (
	"strconv"

	"hms/dto"
	"hms/middleware"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// ReservationController xử lý các endpoint vòng đời đặt phòng
type ReservationController struct {
	reservations *services.ReservationService
	availability *services.AvailabilityService
	reports      *services.ReportService
}

func NewReservationController(reservations *services.ReservationService, availability *services.AvailabilityService, reports *services.ReportService) *ReservationController {
	return &ReservationController{
		reservations: reservations,
		availability: availability,
		reports:      reports,
	}
}

// CheckAvailability đếm số phòng trống của một loại phòng cho khoảng ngày
func (ctl *ReservationController) CheckAvailability(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Query("roomTypeId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid roomTypeId")
		return
	}
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")

	count, err := ctl.availability.Check(uint(roomTypeID), checkIn, checkOut)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, dto.AvailabilityResponse{
		RoomTypeID:     uint(roomTypeID),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		AvailableCount: count,
	})
}

// List lấy danh sách reservation có phân trang, lọc theo status
func (ctl *ReservationController) List(c *gin.Context) {
	page, limit := parsePagination(c)
	status := c.Query("status")

	reservations, total, err := ctl.reservations.List(page, limit, status)
	if err != nil {
		response.FromError(c, err)
		return
	}

	responses := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		responses = append(responses, services.ToReservationResponse(&reservations[i]))
	}
	response.SuccessWithPagination(c, responses, page, limit, total)
}

// Get lấy một reservation theo ID
func (ctl *ReservationController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := ctl.reservations.GetByID(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, services.ToReservationResponse(reservation))
}

// Create tạo reservation mới
func (ctl *ReservationController) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := ctl.reservations.Create(&req, middleware.GetActor(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctl.reports.InvalidateDashboardCache()
	response.Success(c, resp)
}

// Update cập nhật một phần reservation
func (ctl *ReservationController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := ctl.reservations.Update(id, &req, middleware.GetActor(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctl.reports.InvalidateDashboardCache()
	response.Success(c, resp)
}

// Cancel hủy reservation (soft delete). Hủy lần nữa vẫn trả thành công.
func (ctl *ReservationController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := ctl.reservations.Cancel(id, middleware.GetActor(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctl.reports.InvalidateDashboardCache()
	response.Success(c, resp)
}

// CheckIn nhận khách, gán phòng cụ thể. Body có thể chỉ định roomId,
// bỏ trống thì hệ thống tự chọn.
func (ctl *ReservationController) CheckIn(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var body struct {
		RoomID uint `json:"roomId"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	resp, err := ctl.reservations.CheckIn(id, body.RoomID, middleware.GetActor(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctl.reports.InvalidateDashboardCache()
	response.Success(c, resp)
}

// CheckOut trả phòng
func (ctl *ReservationController) CheckOut(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := ctl.reservations.CheckOut(id, middleware.GetActor(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctl.reports.InvalidateDashboardCache()
	response.Success(c, resp)
}

// Delete xóa cứng reservation, chỉ khi chưa có invoice
func (ctl *ReservationController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctl.reservations.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}

	ctl.reports.InvalidateDashboardCache()
	response.Success(c, gin.H{"deleted": id})
}
