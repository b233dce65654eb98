package services

import (
	"fmt"

	"hms/builders"
	"hms/constants"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService điều phối toàn bộ vòng đời đặt phòng:
// resolve guest, kiểm tra phòng trống, tính giá, ghi DB và chuyển trạng thái.
// Mọi thao tác ghi chạy trong một transaction duy nhất.
type ReservationService struct {
	db           *gorm.DB
	log          logger.Logger
	guests       *GuestService
	availability *AvailabilityService
	pricing      *PricingService
}

type ReservationServiceOptions struct {
	DB           *gorm.DB
	Logger       logger.Logger
	Guests       *GuestService
	Availability *AvailabilityService
	Pricing      *PricingService
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNamedLogger("reservations", logger.InfoLevel)
	}
	if opts.Pricing == nil {
		opts.Pricing = NewPricingService()
	}
	return &ReservationService{
		db:           opts.DB,
		log:          opts.Logger,
		guests:       opts.Guests,
		availability: opts.Availability,
		pricing:      opts.Pricing,
	}
}

// Create tạo reservation mới với status confirmed.
// Khóa các phòng của loại phòng (FOR UPDATE) trước khi đếm phòng trống để
// hai request song song không thể cùng lấy phòng cuối: check-then-insert
// là một đơn vị nguyên tử trong transaction.
func (s *ReservationService) Create(req *dto.CreateReservationRequest, actor dto.Actor) (*dto.ReservationResponse, error) {
	if err := validator.ValidateCreateReservation(req); err != nil {
		return nil, err
	}
	checkIn, checkOut, err := validator.ValidateStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	var created models.Reservation
	var guest *models.Guest
	var roomType models.RoomType

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&roomType, req.RoomTypeID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("room type")
			}
			return errors.Internal(err)
		}

		// Khóa hàng phòng của loại này để tuần tự hóa các booking song song
		var rooms []models.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_type_id = ?", req.RoomTypeID).
			Find(&rooms).Error
		if err != nil {
			return errors.Internal(err)
		}

		free, err := s.availability.CountFree(tx, req.RoomTypeID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if free <= 0 {
			return errors.NoAvailability("no rooms available for the requested dates")
		}

		guest, err = s.guests.ResolveOrCreate(tx, req.GuestName, req.GuestEmail, req.GuestPhone)
		if err != nil {
			return err
		}

		total := s.pricing.Compute(roomType.BasePrice, checkIn, checkOut)

		reservation := builders.NewReservationBuilder().
			WithGuest(guest.ID).
			WithRoomType(roomType.ID).
			WithStay(checkIn, checkOut).
			WithNumGuests(req.NumGuests).
			WithTotalPrice(RoundMoney(total)).
			WithStatus(constants.ReservationStatusConfirmed).
			WithSpecialRequests(req.SpecialRequests).
			WithActor(actor.UserID).
			Build()

		if err := tx.Create(reservation).Error; err != nil {
			return errors.Internal(err)
		}
		created = *reservation
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("reservation %d created for guest %d (%s - %s)", created.ID, guest.ID, req.CheckIn, req.CheckOut)
	BroadcastActivity("reservation", fmt.Sprintf("New reservation for %s", guest.Name))

	resp := toReservationResponse(&created)
	resp.GuestName = guest.Name
	resp.GuestEmail = guest.Email
	resp.RoomTypeName = roomType.Name
	return &resp, nil
}

// GetByID lấy reservation kèm guest/room type/room
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Preload("Guest").Preload("RoomType").Preload("Room").First(&reservation, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("reservation")
		}
		return nil, errors.Internal(err)
	}
	return &reservation, nil
}

// List trả về reservations có phân trang, lọc theo status nếu có
func (s *ReservationService) List(page, limit int, status string) ([]models.Reservation, int, error) {
	query := s.db.Model(&models.Reservation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Internal(err)
	}

	var reservations []models.Reservation
	err := query.Preload("Guest").Preload("RoomType").Preload("Room").
		Order("updated_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, errors.Internal(err)
	}
	return reservations, int(total), nil
}

// Update cập nhật một phần reservation. Khi đổi loại phòng hoặc ngày, giá
// được tính lại từ base price hiệu lực và khoảng ngày mới, đồng thời kiểm
// tra lại phòng trống (bỏ qua chính reservation này). Đổi status phải đi
// qua state machine.
func (s *ReservationService) Update(id uint, req *dto.UpdateReservationRequest, actor dto.Actor) (*dto.ReservationResponse, error) {
	var updated models.Reservation

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reservation, id).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("reservation")
			}
			return errors.Internal(err)
		}

		if req.Status != nil {
			if err := models.CanTransition(&reservation, *req.Status); err != nil {
				return err
			}
		}

		datesChanged := false
		checkIn := reservation.CheckIn
		checkOut := reservation.CheckOut
		if req.CheckIn != nil {
			checkIn, err = validator.ParseDate(*req.CheckIn)
			if err != nil {
				return err
			}
			datesChanged = true
		}
		if req.CheckOut != nil {
			checkOut, err = validator.ParseDate(*req.CheckOut)
			if err != nil {
				return err
			}
			datesChanged = true
		}
		if datesChanged && !checkOut.After(checkIn) {
			return errors.Validation("check-out date must be after check-in date")
		}

		roomTypeChanged := req.RoomTypeID != nil && *req.RoomTypeID != reservation.RoomTypeID
		roomTypeID := reservation.RoomTypeID
		if roomTypeChanged {
			roomTypeID = *req.RoomTypeID
		}

		var roomType models.RoomType
		if err := tx.First(&roomType, roomTypeID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("room type")
			}
			return errors.Internal(err)
		}

		// Ngày hoặc loại phòng đổi: invariant không chồng lịch phải được
		// kiểm tra lại, và total_price không được để lại giá cũ
		if datesChanged || roomTypeChanged {
			if isActiveStatus(reservation.Status) {
				free, err := s.availability.CountFreeExcluding(tx, roomTypeID, checkIn, checkOut, reservation.ID)
				if err != nil {
					return err
				}
				if free <= 0 {
					return errors.NoAvailability("no rooms available for the new dates")
				}
			}
			reservation.TotalPrice = RoundMoney(s.pricing.Compute(roomType.BasePrice, checkIn, checkOut))
			reservation.CheckIn = checkIn
			reservation.CheckOut = checkOut
			reservation.RoomTypeID = roomTypeID
			// Phòng cụ thể đã gán có thể không còn hợp lệ với loại/ngày mới
			if roomTypeChanged {
				reservation.RoomID = nil
			} else if reservation.RoomID != nil {
				held, err := s.availability.RoomHeld(tx, *reservation.RoomID, checkIn, checkOut, reservation.ID)
				if err != nil {
					return err
				}
				if held {
					return errors.Conflict("assigned room is already reserved for the new dates")
				}
			}
		}

		if req.RoomID != nil {
			var room models.Room
			if err := tx.First(&room, *req.RoomID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errors.NotFound("room")
				}
				return errors.Internal(err)
			}
			if room.RoomTypeID != reservation.RoomTypeID {
				return errors.Validation("room does not belong to the reservation's room type")
			}
			held, err := s.availability.RoomHeld(tx, room.ID, reservation.CheckIn, reservation.CheckOut, reservation.ID)
			if err != nil {
				return err
			}
			if held {
				return errors.Conflict("room is already reserved for the reservation's dates")
			}
			reservation.RoomID = req.RoomID
		}
		if req.NumGuests != nil {
			if *req.NumGuests < 1 {
				return errors.Validation("number of guests must be at least 1")
			}
			reservation.NumGuests = *req.NumGuests
		}
		if req.SpecialRequests != nil {
			reservation.SpecialRequests = *req.SpecialRequests
		}
		if req.Status != nil {
			reservation.Status = *req.Status
		}

		reservation.UpdatedBy = actor.UserID
		if err := tx.Save(&reservation).Error; err != nil {
			return errors.Internal(err)
		}
		updated = reservation
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.respondWithNames(&updated)
}

// Cancel là soft delete: status về cancelled, giữ nguyên hàng.
// Hủy một reservation đã hủy là no-op trả về thành công.
func (s *ReservationService) Cancel(id uint, actor dto.Actor) (*dto.ReservationResponse, error) {
	var cancelled models.Reservation

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reservation, id).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("reservation")
			}
			return errors.Internal(err)
		}

		if reservation.Status == constants.ReservationStatusCancelled {
			cancelled = reservation
			return nil
		}

		wasCheckedIn := reservation.Status == constants.ReservationStatusCheckedIn
		state := models.GetReservationState(reservation.Status)
		if err := state.Cancel(&reservation); err != nil {
			return err
		}

		// Khách đang ở thì trả phòng vật lý về available
		if wasCheckedIn && reservation.RoomID != nil {
			err := tx.Model(&models.Room{}).
				Where("id = ?", *reservation.RoomID).
				Update("status", constants.RoomStatusAvailable).Error
			if err != nil {
				return errors.Internal(err)
			}
		}

		reservation.UpdatedBy = actor.UserID
		if err := tx.Save(&reservation).Error; err != nil {
			return errors.Internal(err)
		}
		cancelled = reservation
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("reservation %d cancelled by user %d", cancelled.ID, actor.UserID)
	return s.respondWithNames(&cancelled)
}

// CheckIn chuyển reservation sang checked-in và gán phòng cụ thể.
// roomID = 0 nghĩa là hệ thống tự chọn phòng trống đầu tiên.
func (s *ReservationService) CheckIn(id uint, roomID uint, actor dto.Actor) (*dto.ReservationResponse, error) {
	var checkedIn models.Reservation

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reservation, id).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("reservation")
			}
			return errors.Internal(err)
		}

		state := models.GetReservationState(reservation.Status)
		if err := state.CheckIn(&reservation); err != nil {
			return err
		}

		var room *models.Room
		if roomID != 0 {
			var candidate models.Room
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&candidate, roomID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errors.NotFound("room")
				}
				return errors.Internal(err)
			}
			if candidate.RoomTypeID != reservation.RoomTypeID {
				return errors.Validation("room does not belong to the reservation's room type")
			}
			if candidate.Status != constants.RoomStatusAvailable {
				return errors.Conflict("room is not available")
			}
			held, err := s.availability.RoomHeld(tx, candidate.ID, reservation.CheckIn, reservation.CheckOut, reservation.ID)
			if err != nil {
				return err
			}
			if held {
				return errors.Conflict("room is already reserved for the reservation's dates")
			}
			room = &candidate
		} else {
			room, err = s.availability.FindFreeRoom(tx, reservation.RoomTypeID, reservation.CheckIn, reservation.CheckOut)
			if err != nil {
				return err
			}
		}

		err = tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Update("status", constants.RoomStatusOccupied).Error
		if err != nil {
			return errors.Internal(err)
		}

		reservation.RoomID = &room.ID
		reservation.UpdatedBy = actor.UserID
		if err := tx.Save(&reservation).Error; err != nil {
			return errors.Internal(err)
		}
		checkedIn = reservation
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.respondWithNames(&checkedIn)
}

// CheckOut chuyển reservation sang checked-out và trả phòng về available
func (s *ReservationService) CheckOut(id uint, actor dto.Actor) (*dto.ReservationResponse, error) {
	var checkedOut models.Reservation

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reservation, id).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("reservation")
			}
			return errors.Internal(err)
		}

		state := models.GetReservationState(reservation.Status)
		if err := state.CheckOut(&reservation); err != nil {
			return err
		}

		if reservation.RoomID != nil {
			err := tx.Model(&models.Room{}).
				Where("id = ?", *reservation.RoomID).
				Update("status", constants.RoomStatusAvailable).Error
			if err != nil {
				return errors.Internal(err)
			}
		}

		reservation.UpdatedBy = actor.UserID
		if err := tx.Save(&reservation).Error; err != nil {
			return errors.Internal(err)
		}
		checkedOut = reservation
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.respondWithNames(&checkedOut)
}

// Delete xóa cứng reservation, chỉ khi không còn invoice tham chiếu
func (s *ReservationService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("reservation")
			}
			return errors.Internal(err)
		}

		var invoices int64
		if err := tx.Model(&models.Invoice{}).Where("reservation_id = ?", id).Count(&invoices).Error; err != nil {
			return errors.Internal(err)
		}
		if invoices > 0 {
			return errors.Conflict("cannot delete reservation with existing invoices")
		}

		if err := tx.Delete(&reservation).Error; err != nil {
			return errors.Internal(err)
		}
		return nil
	})
}

// isActiveStatus: reservation còn giữ phòng trong tương lai
func isActiveStatus(status string) bool {
	return status == constants.ReservationStatusConfirmed || status == constants.ReservationStatusCheckedIn
}

func toReservationResponse(r *models.Reservation) dto.ReservationResponse {
	resp := dto.ReservationResponse{
		ID:              r.ID,
		GuestID:         r.GuestID,
		RoomTypeID:      r.RoomTypeID,
		RoomID:          r.RoomID,
		CheckIn:         r.CheckIn.Format(constants.DateFormat),
		CheckOut:        r.CheckOut.Format(constants.DateFormat),
		NumGuests:       r.NumGuests,
		TotalPrice:      r.TotalPrice.StringFixed(2),
		Status:          r.Status,
		SpecialRequests: r.SpecialRequests,
		CreatedAt:       r.CreatedAt.Format(constants.DateTimeFormat),
		UpdatedAt:       r.UpdatedAt.Format(constants.DateTimeFormat),
	}
	if r.Guest.ID != 0 {
		resp.GuestName = r.Guest.Name
		resp.GuestEmail = r.Guest.Email
	}
	if r.RoomType.ID != 0 {
		resp.RoomTypeName = r.RoomType.Name
	}
	if r.Room != nil {
		resp.RoomNumber = r.Room.Number
	}
	return resp
}

// ToReservationResponse chuyển model sang DTO response
func ToReservationResponse(r *models.Reservation) dto.ReservationResponse {
	return toReservationResponse(r)
}

// respondWithNames nạp lại các tên denormalized cho response
func (s *ReservationService) respondWithNames(r *models.Reservation) (*dto.ReservationResponse, error) {
	full, err := s.GetByID(r.ID)
	if err != nil {
		return nil, err
	}
	resp := toReservationResponse(full)
	return &resp, nil
}
