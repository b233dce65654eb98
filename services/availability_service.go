package services

import (
	"time"

	"hms/constants"
	"hms/errors"
	"hms/models"
	"hms/validator"

	"gorm.io/gorm"
)

// AvailabilityService xác định số phòng trống của một loại phòng
// trong một khoảng ngày [checkIn, checkOut).
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// RangesOverlap kiểm tra hai khoảng nửa mở [aStart,aEnd) và [bStart,bEnd)
// có giao nhau không: aStart < bEnd && bStart < aEnd.
// Ngày trả phòng được tính là trống cho lượt nhận phòng mới.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FilterFreeRooms trả về các phòng trong rooms có status available và không
// bị giữ bởi một reservation chưa hủy giao với [checkIn, checkOut).
// Reservation chưa gán phòng (RoomID nil) vẫn chiếm một suất: mỗi reservation
// như vậy cắt bớt một phòng khỏi danh sách trống.
func FilterFreeRooms(rooms []models.Room, reservations []models.Reservation, checkIn, checkOut time.Time) []models.Room {
	busy := make(map[uint]bool)
	unassigned := 0
	for _, r := range reservations {
		if r.Status == constants.ReservationStatusCancelled {
			continue
		}
		if !RangesOverlap(r.CheckIn, r.CheckOut, checkIn, checkOut) {
			continue
		}
		if r.RoomID == nil {
			unassigned++
		} else {
			busy[*r.RoomID] = true
		}
	}

	var free []models.Room
	for _, room := range rooms {
		if room.Status != constants.RoomStatusAvailable {
			continue
		}
		if busy[room.ID] {
			continue
		}
		free = append(free, room)
	}
	if unassigned >= len(free) {
		return nil
	}
	return free[:len(free)-unassigned]
}

// RoomConflicts kiểm tra một phòng cụ thể có bị reservation chưa hủy nào
// trong danh sách giữ trong khoảng [checkIn, checkOut) không.
func RoomConflicts(reservations []models.Reservation, checkIn, checkOut time.Time) bool {
	for _, r := range reservations {
		if r.Status == constants.ReservationStatusCancelled {
			continue
		}
		if RangesOverlap(r.CheckIn, r.CheckOut, checkIn, checkOut) {
			return true
		}
	}
	return false
}

// overlappingRoomIDs là subquery lấy id các phòng đang bị giữ trong khoảng ngày
func overlappingRoomIDs(tx *gorm.DB, checkIn, checkOut time.Time) *gorm.DB {
	return tx.Model(&models.Reservation{}).
		Select("room_id").
		Where("room_id IS NOT NULL").
		Where("status <> ?", constants.ReservationStatusCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
}

// unassignedHolds đếm số reservation chưa hủy của loại phòng, chưa gán phòng,
// giao với khoảng ngày. Mỗi reservation như vậy chiếm một suất phòng trống.
func unassignedHolds(tx *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	q := tx.Model(&models.Reservation{}).
		Where("room_type_id = ?", roomTypeID).
		Where("room_id IS NULL").
		Where("status <> ?", constants.ReservationStatusCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, errors.Internal(err)
	}
	return count, nil
}

// countFree đếm phòng available của loại phòng không bị giữ đích danh,
// rồi trừ các reservation chưa gán phòng đang giao khoảng ngày.
func (s *AvailabilityService) countFree(tx *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) (int, error) {
	sub := overlappingRoomIDs(tx, checkIn, checkOut)
	if excludeID != 0 {
		sub = sub.Where("id <> ?", excludeID)
	}

	var candidates int64
	err := tx.Model(&models.Room{}).
		Where("room_type_id = ? AND status = ?", roomTypeID, constants.RoomStatusAvailable).
		Where("id NOT IN (?)", sub).
		Count(&candidates).Error
	if err != nil {
		return 0, errors.Internal(err)
	}

	held, err := unassignedHolds(tx, roomTypeID, checkIn, checkOut, excludeID)
	if err != nil {
		return 0, err
	}

	free := int(candidates - held)
	if free < 0 {
		free = 0
	}
	return free, nil
}

// CountFree đếm số phòng trống của một loại phòng trong khoảng ngày.
// Chỉ đọc, không có side effect. Trả về 0 khi hết phòng, không phải lỗi.
func (s *AvailabilityService) CountFree(tx *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time) (int, error) {
	return s.countFree(tx, roomTypeID, checkIn, checkOut, 0)
}

// CountFreeExcluding đếm phòng trống nhưng bỏ qua reservation cho trước,
// dùng khi cập nhật ngày/loại phòng của chính reservation đó.
func (s *AvailabilityService) CountFreeExcluding(tx *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time, reservationID uint) (int, error) {
	return s.countFree(tx, roomTypeID, checkIn, checkOut, reservationID)
}

// RoomHeld kiểm tra một phòng cụ thể có đang bị reservation khác giữ
// trong khoảng ngày không. excludeID bỏ qua chính reservation đang xét.
func (s *AvailabilityService) RoomHeld(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	var reservations []models.Reservation
	q := tx.Where("room_id = ?", roomID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&reservations).Error; err != nil {
		return false, errors.Internal(err)
	}
	return RoomConflicts(reservations, checkIn, checkOut), nil
}

// FindFreeRoom tìm một phòng trống cụ thể của loại phòng trong khoảng ngày
func (s *AvailabilityService) FindFreeRoom(tx *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time) (*models.Room, error) {
	var room models.Room
	err := tx.
		Where("room_type_id = ? AND status = ?", roomTypeID, constants.RoomStatusAvailable).
		Where("id NOT IN (?)", overlappingRoomIDs(tx, checkIn, checkOut)).
		Order("number").
		First(&room).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NoAvailability("no free room for the requested dates")
	}
	if err != nil {
		return nil, errors.Internal(err)
	}
	return &room, nil
}

// Check kiểm tra phòng trống theo input dạng chuỗi từ API.
// Validate ngày (YYYY-MM-DD, checkIn < checkOut, không ở quá khứ) rồi đếm.
func (s *AvailabilityService) Check(roomTypeID uint, checkInStr, checkOutStr string) (int, error) {
	checkIn, checkOut, err := validator.ValidateStayRange(checkInStr, checkOutStr)
	if err != nil {
		return 0, err
	}

	var roomType models.RoomType
	if err := s.db.First(&roomType, roomTypeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.NotFound("room type")
		}
		return 0, errors.Internal(err)
	}

	return s.CountFree(s.db, roomTypeID, checkIn, checkOut)
}
