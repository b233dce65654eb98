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

const roomListCacheKey = "rooms:all"

// RoomController xử lý các endpoint phòng vật lý
type RoomController struct {
	catalog *services.CatalogService
}

func NewRoomController(catalog *services.CatalogService) *RoomController {
	return &RoomController{catalog: catalog}
}

// List lấy tất cả phòng kèm loại phòng, cache Redis khi không có filter
func (ctl *RoomController) List(c *gin.Context) {
	roomTypeIDStr := c.Query("roomTypeId")
	onlyAvailable := c.Query("available") == "true"

	if roomTypeIDStr == "" && !onlyAvailable && config.RedisClient != nil {
		var cached []dto.RoomResponse
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomListCacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	var rooms []models.Room
	var err error
	switch {
	case onlyAvailable:
		var roomTypeID uint64
		if roomTypeIDStr != "" {
			roomTypeID, err = strconv.ParseUint(roomTypeIDStr, 10, 32)
			if err != nil {
				response.BadRequest(c, "Invalid roomTypeId")
				return
			}
		}
		rooms, err = ctl.catalog.ListAvailableRooms(uint(roomTypeID))
	default:
		rooms, err = ctl.catalog.ListRooms()
	}
	if err != nil {
		response.FromError(c, err)
		return
	}

	responses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		if roomTypeIDStr != "" && !onlyAvailable {
			id, parseErr := strconv.ParseUint(roomTypeIDStr, 10, 32)
			if parseErr == nil && rooms[i].RoomTypeID != uint(id) {
				continue
			}
		}
		responses = append(responses, toRoomResponse(&rooms[i]))
	}

	if roomTypeIDStr == "" && !onlyAvailable && config.RedisClient != nil {
		_ = services.SetToRedis(config.Ctx, config.RedisClient, roomListCacheKey, responses, 5*time.Minute)
	}
	response.Success(c, responses)
}

// Get lấy một phòng theo ID
func (ctl *RoomController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctl.catalog.GetRoom(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, toRoomResponse(room))
}

// Create tạo phòng mới
func (ctl *RoomController) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := ctl.catalog.CreateRoom(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	invalidateCatalogCache()
	response.Success(c, toRoomResponse(room))
}

// Update cập nhật phòng (số phòng, loại, trạng thái, ghi chú)
func (ctl *RoomController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := ctl.catalog.UpdateRoom(id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	invalidateCatalogCache()
	response.Success(c, toRoomResponse(room))
}

// Delete xóa phòng, chỉ khi chưa từng có reservation tham chiếu
func (ctl *RoomController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctl.catalog.DeleteRoom(id); err != nil {
		response.FromError(c, err)
		return
	}

	invalidateCatalogCache()
	response.Success(c, gin.H{"deleted": id})
}

func toRoomResponse(room *models.Room) dto.RoomResponse {
	resp := dto.RoomResponse{
		ID:         room.ID,
		Number:     room.Number,
		RoomTypeID: room.RoomTypeID,
		Status:     room.Status,
		Notes:      room.Notes,
	}
	if room.RoomType.ID != 0 {
		resp.RoomTypeName = room.RoomType.Name
	}
	return resp
}
