package services

import (
	"hms/constants"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/validator"

	"gorm.io/gorm"
)

// CatalogService quản lý loại phòng và phòng vật lý
type CatalogService struct {
	db  *gorm.DB
	log logger.Logger
}

type CatalogServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNamedLogger("catalog", logger.InfoLevel)
	}
	return &CatalogService{db: opts.DB, log: opts.Logger}
}

// GetRoomType lấy loại phòng theo ID
func (s *CatalogService) GetRoomType(id uint) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := s.db.First(&roomType, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("room type")
		}
		return nil, errors.Internal(err)
	}
	return &roomType, nil
}

// ListRoomTypes trả về tất cả loại phòng
func (s *CatalogService) ListRoomTypes() ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	if err := s.db.Order("name").Find(&roomTypes).Error; err != nil {
		return nil, errors.Internal(err)
	}
	return roomTypes, nil
}

// CreateRoomType tạo loại phòng mới
func (s *CatalogService) CreateRoomType(req *dto.CreateRoomTypeRequest) (*models.RoomType, error) {
	basePrice, err := validator.ParsePositiveMoney(req.BasePrice)
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.RoomType{}).Where("name = ?", req.Name).Count(&existing).Error; err != nil {
		return nil, errors.Internal(err)
	}
	if existing > 0 {
		return nil, errors.Conflict("room type name already exists")
	}

	roomType := models.RoomType{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   RoundMoney(basePrice),
		Amenities:   req.Amenities,
	}
	if err := s.db.Create(&roomType).Error; err != nil {
		return nil, errors.Internal(err)
	}
	return &roomType, nil
}

// UpdateRoomType cập nhật giá/mô tả/tiện nghi của loại phòng.
// Tên là identity, không đổi. Một đường cập nhật duy nhất, idempotent.
func (s *CatalogService) UpdateRoomType(id uint, req *dto.UpdateRoomTypeRequest) (*models.RoomType, error) {
	roomType, err := s.GetRoomType(id)
	if err != nil {
		return nil, err
	}

	if req.BasePrice != nil {
		basePrice, err := validator.ParsePositiveMoney(*req.BasePrice)
		if err != nil {
			return nil, err
		}
		roomType.BasePrice = RoundMoney(basePrice)
	}
	if req.Description != nil {
		roomType.Description = *req.Description
	}
	if req.Amenities != nil {
		roomType.Amenities = req.Amenities
	}

	if err := s.db.Save(roomType).Error; err != nil {
		return nil, errors.Internal(err)
	}
	return roomType, nil
}

// DeleteRoomType xóa loại phòng, từ chối khi còn phòng thuộc loại này
func (s *CatalogService) DeleteRoomType(id uint) error {
	roomType, err := s.GetRoomType(id)
	if err != nil {
		return err
	}

	var rooms int64
	if err := s.db.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&rooms).Error; err != nil {
		return errors.Internal(err)
	}
	if rooms > 0 {
		return errors.Conflict("cannot delete room type that still has rooms")
	}

	if err := s.db.Delete(roomType).Error; err != nil {
		return errors.Internal(err)
	}
	return nil
}

// GetRoom lấy phòng theo ID
func (s *CatalogService) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.Preload("RoomType").First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("room")
		}
		return nil, errors.Internal(err)
	}
	return &room, nil
}

// ListRooms trả về tất cả phòng kèm loại phòng
func (s *CatalogService) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Preload("RoomType").Order("number").Find(&rooms).Error; err != nil {
		return nil, errors.Internal(err)
	}
	return rooms, nil
}

// ListAvailableRooms trả về các phòng status available, lọc theo loại
// phòng khi roomTypeID khác 0
func (s *CatalogService) ListAvailableRooms(roomTypeID uint) ([]models.Room, error) {
	query := s.db.Where("status = ?", constants.RoomStatusAvailable)
	if roomTypeID != 0 {
		query = query.Where("room_type_id = ?", roomTypeID)
	}

	var rooms []models.Room
	err := query.Preload("RoomType").Order("number").Find(&rooms).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	return rooms, nil
}

// CreateRoom tạo phòng mới
func (s *CatalogService) CreateRoom(req *dto.CreateRoomRequest) (*models.Room, error) {
	if _, err := s.GetRoomType(req.RoomTypeID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = constants.RoomStatusAvailable
	}
	if err := validator.ValidateRoomStatus(status); err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.Room{}).Where("number = ?", req.Number).Count(&existing).Error; err != nil {
		return nil, errors.Internal(err)
	}
	if existing > 0 {
		return nil, errors.Conflict("room number already exists")
	}

	room := models.Room{
		Number:     req.Number,
		RoomTypeID: req.RoomTypeID,
		Status:     status,
		Notes:      req.Notes,
	}
	if err := s.db.Create(&room).Error; err != nil {
		return nil, errors.Internal(err)
	}
	return &room, nil
}

// UpdateRoom cập nhật một phần thông tin phòng
func (s *CatalogService) UpdateRoom(id uint, req *dto.UpdateRoomRequest) (*models.Room, error) {
	room, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}

	if req.RoomTypeID != nil {
		if _, err := s.GetRoomType(*req.RoomTypeID); err != nil {
			return nil, err
		}
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.Number != nil {
		room.Number = *req.Number
	}
	if req.Status != nil {
		if err := validator.ValidateRoomStatus(*req.Status); err != nil {
			return nil, err
		}
		room.Status = *req.Status
	}
	if req.Notes != nil {
		room.Notes = *req.Notes
	}

	if err := s.db.Save(room).Error; err != nil {
		return nil, errors.Internal(err)
	}
	return room, nil
}

// DeleteRoom xóa phòng, từ chối khi còn reservation tham chiếu tới phòng
func (s *CatalogService) DeleteRoom(id uint) error {
	room, err := s.GetRoom(id)
	if err != nil {
		return err
	}

	var refs int64
	if err := s.db.Model(&models.Reservation{}).Where("room_id = ?", id).Count(&refs).Error; err != nil {
		return errors.Internal(err)
	}
	if refs > 0 {
		return errors.Conflict("cannot delete room referenced by reservations")
	}

	if err := s.db.Delete(room).Error; err != nil {
		return errors.Internal(err)
	}
	return nil
}
