package controllers

import (
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// SettingController xử lý các endpoint cấu hình vận hành (tax_rate...)
type SettingController struct {
	settings *services.SettingService
}

func NewSettingController(settings *services.SettingService) *SettingController {
	return &SettingController{settings: settings}
}

// List lấy tất cả setting
func (ctl *SettingController) List(c *gin.Context) {
	settings, err := ctl.settings.List()
	if err != nil {
		response.FromError(c, err)
		return
	}

	responses := make([]dto.SettingResponse, 0, len(settings))
	for i := range settings {
		responses = append(responses, toSettingResponse(&settings[i]))
	}
	response.Success(c, responses)
}

// Get lấy một setting theo key
func (ctl *SettingController) Get(c *gin.Context) {
	key := c.Param("key")
	setting, err := ctl.settings.Get(key)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, toSettingResponse(setting))
}

// Upsert tạo hoặc cập nhật một setting theo key
func (ctl *SettingController) Upsert(c *gin.Context) {
	key := c.Param("key")

	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	setting, err := ctl.settings.Upsert(key, req.Value)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, toSettingResponse(setting))
}

func toSettingResponse(s *models.Setting) dto.SettingResponse {
	return dto.SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt.Format(constants.DateTimeFormat),
	}
}
