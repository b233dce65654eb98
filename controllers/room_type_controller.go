package controllers

import (
	"strconv"
	"time"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

const roomTypeListCacheKey = "roomtypes:all"

// RoomTypeController xử lý các endpoint danh mục loại phòng
type RoomTypeController struct {
	catalog *services.CatalogService
}

func NewRoomTypeController(catalog *services.CatalogService) *RoomTypeController {
	return &RoomTypeController{catalog: catalog}
}

// List lấy tất cả loại phòng, cache Redis 10 phút
func (ctl *RoomTypeController) List(c *gin.Context) {
	if config.RedisClient != nil {
		var cached []dto.RoomTypeResponse
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomTypeListCacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	roomTypes, err := ctl.catalog.ListRoomTypes()
	if err != nil {
		response.FromError(c, err)
		return
	}

	responses := make([]dto.RoomTypeResponse, 0, len(roomTypes))
	for i := range roomTypes {
		responses = append(responses, toRoomTypeResponse(&roomTypes[i]))
	}

	if config.RedisClient != nil {
		_ = services.SetToRedis(config.Ctx, config.RedisClient, roomTypeListCacheKey, responses, 10*time.Minute)
	}
	response.Success(c, responses)
}

// Get lấy một loại phòng theo ID
func (ctl *RoomTypeController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	roomType, err := ctl.catalog.GetRoomType(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, toRoomTypeResponse(roomType))
}

// Create tạo loại phòng mới
func (ctl *RoomTypeController) Create(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	roomType, err := ctl.catalog.CreateRoomType(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	invalidateCatalogCache()
	response.Success(c, toRoomTypeResponse(roomType))
}

// Update cập nhật loại phòng. Tên là bất biến, chỉ đổi được mô tả,
// giá cơ bản và tiện nghi.
func (ctl *RoomTypeController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	roomType, err := ctl.catalog.UpdateRoomType(id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	invalidateCatalogCache()
	response.Success(c, toRoomTypeResponse(roomType))
}

// Delete xóa loại phòng, chỉ khi không còn phòng thuộc loại này
func (ctl *RoomTypeController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctl.catalog.DeleteRoomType(id); err != nil {
		response.FromError(c, err)
		return
	}

	invalidateCatalogCache()
	response.Success(c, gin.H{"deleted": id})
}

func toRoomTypeResponse(rt *models.RoomType) dto.RoomTypeResponse {
	return dto.RoomTypeResponse{
		ID:          rt.ID,
		Name:        rt.Name,
		Description: rt.Description,
		BasePrice:   rt.BasePrice.StringFixed(2),
		Amenities:   rt.Amenities,
	}
}

// parseIDParam đọc :id từ path, trả BadRequest nếu không hợp lệ
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// parsePagination đọc page/limit từ query với default page=0 limit=10
func parsePagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	return page, limit
}

// invalidateCatalogCache xóa các cache danh mục sau khi ghi
func invalidateCatalogCache() {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteKeysByPattern(config.Ctx, config.RedisClient, "roomtypes:*")
	_ = services.DeleteKeysByPattern(config.Ctx, config.RedisClient, "rooms:*")
}
