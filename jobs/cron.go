package jobs

import (
	"log"
	"time"

	"hms/config"
	"hms/constants"
	"hms/models"
	"hms/services"
	"hms/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, db *gorm.DB, m *melody.Melody) error {
	// Chạy lúc 0h mỗi ngày: trả các phòng của reservation đã quá ngày
	// check-out về available và xóa cache dashboard
	_, err := c.AddFunc("0 0 * * *", func() {
		utils.LogInfo("Bắt đầu giải phóng phòng quá hạn lúc: %v", time.Now())
		if err := ReleaseOverdueRooms(db); err != nil {
			utils.LogError("Lỗi khi giải phóng phòng quá hạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// ReleaseOverdueRooms tìm các reservation còn checked-in nhưng đã qua ngày
// check-out, chuyển sang checked-out và trả phòng về available
func ReleaseOverdueRooms(db *gorm.DB) error {
	today := time.Now().Truncate(24 * time.Hour)

	var overdue []models.Reservation
	err := db.Where("status = ? AND check_out <= ?", constants.ReservationStatusCheckedIn, today).
		Find(&overdue).Error
	if err != nil {
		return err
	}

	for _, reservation := range overdue {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Reservation{}).
				Where("id = ?", reservation.ID).
				Update("status", constants.ReservationStatusCheckedOut).Error; err != nil {
				return err
			}
			if reservation.RoomID != nil {
				return tx.Model(&models.Room{}).
					Where("id = ?", *reservation.RoomID).
					Update("status", constants.RoomStatusAvailable).Error
			}
			return nil
		})
		if err != nil {
			utils.LogError("Lỗi khi trả phòng cho reservation %d: %v", reservation.ID, err)
			continue
		}
		services.BroadcastActivity("checkout", "Overdue reservation released by nightly job")
	}

	if len(overdue) > 0 && config.RedisClient != nil {
		_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "dashboard:stats")
	}
	return nil
}
