package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/validator"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	dashboardStatsCacheKey = "dashboard:stats"
	dashboardStatsCacheTTL = 5 * time.Minute
	recentActivityWindow   = 24 * time.Hour
	maxReportDays          = 366
)

// ReportService tổng hợp số liệu vận hành: lấp đầy, doanh thu,
// thống kê dashboard và hoạt động gần đây.
type ReportService struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

type ReportServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNamedLogger("reports", logger.InfoLevel)
	}
	return &ReportService{db: opts.DB, rdb: opts.Redis, log: opts.Logger}
}

// Occupancy tính chuỗi lấp đầy theo ngày trong [start, end].
// Một phòng tính là occupied vào ngày d khi có reservation confirmed hoặc
// checked-in với check_in <= d < check_out (ngày check-out không tính).
// Rate là phần trăm, làm tròn 2 chữ số. Mặc định là 7 ngày gần nhất.
func (s *ReportService) Occupancy(startStr, endStr string) (*dto.OccupancyReport, error) {
	start, end, err := parseReportRange(startStr, endStr, 7)
	if err != nil {
		return nil, err
	}

	var totalRooms int64
	if err := s.db.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return nil, errors.Internal(err)
	}

	var reservations []models.Reservation
	err = s.db.Where("status IN ?", []string{constants.ReservationStatusConfirmed, constants.ReservationStatusCheckedIn}).
		Where("check_in <= ? AND check_out > ?", end, start).
		Find(&reservations).Error
	if err != nil {
		return nil, errors.Internal(err)
	}

	report := &dto.OccupancyReport{
		StartDate:  start.Format(constants.DateFormat),
		EndDate:    end.Format(constants.DateFormat),
		TotalRooms: int(totalRooms),
	}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		occupied := 0
		for _, r := range reservations {
			if !r.CheckIn.After(day) && r.CheckOut.After(day) {
				occupied++
			}
		}
		rate := 0.0
		if totalRooms > 0 {
			rate = math.Round(float64(occupied)/float64(totalRooms)*100*100) / 100
		}
		report.Daily = append(report.Daily, dto.OccupancyDay{
			Date:      day.Format(constants.DateFormat),
			Occupied:  occupied,
			Available: int(totalRooms) - occupied,
			Rate:      rate,
		})
	}
	return report, nil
}

// Revenue tính chuỗi doanh thu theo ngày trong [start, end]: tổng
// total_price của các reservation chưa hủy, nhóm theo ngày check-in.
// Mặc định là 30 ngày gần nhất.
func (s *ReportService) Revenue(startStr, endStr string) (*dto.RevenueReport, error) {
	start, end, err := parseReportRange(startStr, endStr, 30)
	if err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	err = s.db.Where("status <> ?", constants.ReservationStatusCancelled).
		Where("check_in >= ? AND check_in <= ?", start, end).
		Find(&reservations).Error
	if err != nil {
		return nil, errors.Internal(err)
	}

	byDay := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, r := range reservations {
		day := r.CheckIn.Format(constants.DateFormat)
		byDay[day] = byDay[day].Add(r.TotalPrice)
		total = total.Add(r.TotalPrice)
	}

	report := &dto.RevenueReport{
		StartDate:    start.Format(constants.DateFormat),
		EndDate:      end.Format(constants.DateFormat),
		TotalRevenue: total.StringFixed(2),
	}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(constants.DateFormat)
		report.Daily = append(report.Daily, dto.RevenueDay{
			Date:    key,
			Revenue: byDay[key].StringFixed(2),
		})
	}
	return report, nil
}

// DashboardStats trả về thống kê tổng quan, cache Redis 5 phút.
// Cache bị xóa khi reservation hoặc room thay đổi.
func (s *ReportService) DashboardStats() (*dto.DashboardStats, error) {
	if s.rdb != nil {
		var cached dto.DashboardStats
		if err := GetFromRedis(config.Ctx, s.rdb, dashboardStatsCacheKey, &cached); err == nil && cached.TotalRooms > 0 {
			return &cached, nil
		}
	}

	stats := &dto.DashboardStats{}
	today := validator.Today()

	var totalRooms int64
	if err := s.db.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return nil, errors.Internal(err)
	}
	stats.TotalRooms = int(totalRooms)

	// Occupied tính theo reservation đang phủ ngày hôm nay, không theo
	// cột status của phòng, để số liệu khớp với lịch đặt
	var occupied int64
	err := s.db.Model(&models.Reservation{}).
		Where("status IN ?", []string{constants.ReservationStatusConfirmed, constants.ReservationStatusCheckedIn}).
		Where("check_in <= ? AND check_out > ?", today, today).
		Count(&occupied).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	stats.OccupiedRooms = int(occupied)

	var maintenance int64
	err = s.db.Model(&models.Room{}).
		Where("status = ?", constants.RoomStatusMaintenance).
		Count(&maintenance).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	stats.MaintenanceRooms = int(maintenance)
	stats.AvailableRooms = stats.TotalRooms - stats.OccupiedRooms - stats.MaintenanceRooms

	type typeRevenue struct {
		Name    string
		Revenue decimal.Decimal
	}
	var revenues []typeRevenue
	err = s.db.Model(&models.Reservation{}).
		Select("room_types.name as name, COALESCE(SUM(reservations.total_price), 0) as revenue").
		Joins("JOIN room_types ON room_types.id = reservations.room_type_id").
		Where("reservations.status <> ?", constants.ReservationStatusCancelled).
		Group("room_types.name").
		Order("revenue DESC").
		Scan(&revenues).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	for _, r := range revenues {
		stats.RevenueBreakdown = append(stats.RevenueBreakdown, dto.RoomTypeRevenue{
			RoomType: r.Name,
			Revenue:  r.Revenue.StringFixed(2),
		})
	}

	if s.rdb != nil {
		if err := SetToRedis(config.Ctx, s.rdb, dashboardStatsCacheKey, stats, dashboardStatsCacheTTL); err != nil {
			s.log.Error("failed to cache dashboard stats: %v", err)
		}
	}
	return stats, nil
}

// InvalidateDashboardCache xóa cache thống kê sau khi dữ liệu nguồn đổi
func (s *ReportService) InvalidateDashboardCache() {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(config.Ctx, s.rdb, dashboardStatsCacheKey); err != nil {
		s.log.Error("failed to invalidate dashboard cache: %v", err)
	}
}

// RecentActivity gom reservation và payment trong 24h gần nhất,
// mới nhất trước
func (s *ReportService) RecentActivity(limit int) ([]dto.ActivityEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	since := time.Now().Add(-recentActivityWindow)

	var reservations []models.Reservation
	err := s.db.Preload("Guest").
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, errors.Internal(err)
	}

	var payments []models.Payment
	err = s.db.Where("paid_at >= ?", since).
		Order("paid_at DESC").
		Limit(limit).
		Find(&payments).Error
	if err != nil {
		return nil, errors.Internal(err)
	}

	entries := make([]dto.ActivityEntry, 0, len(reservations)+len(payments))
	for _, r := range reservations {
		entries = append(entries, dto.ActivityEntry{
			Type: "reservation",
			Text: fmt.Sprintf("Reservation #%d for %s (%s to %s)", r.ID, r.Guest.Name, r.CheckIn.Format(constants.DateFormat), r.CheckOut.Format(constants.DateFormat)),
			Time: r.CreatedAt.Format(constants.DateTimeFormat),
		})
	}
	for _, p := range payments {
		entries = append(entries, dto.ActivityEntry{
			Type: "payment",
			Text: fmt.Sprintf("Payment of %s via %s on invoice #%d", p.Amount.StringFixed(2), p.Method, p.InvoiceID),
			Time: p.PaidAt.Format(constants.DateTimeFormat),
		})
	}

	// Trộn hai nguồn rồi sắp theo thời gian giảm dần
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Time > entries[j].Time
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// parseReportRange parse và kiểm tra khoảng ngày báo cáo.
// Thiếu tham số thì mặc định là defaultDays ngày gần nhất tính đến hôm nay.
func parseReportRange(startStr, endStr string, defaultDays int) (time.Time, time.Time, error) {
	if startStr == "" {
		startStr = validator.Today().AddDate(0, 0, -defaultDays).Format(constants.DateFormat)
	}
	if endStr == "" {
		endStr = validator.Today().Format(constants.DateFormat)
	}

	start, err := validator.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := validator.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.Validation("end date must not be before start date")
	}
	if end.Sub(start).Hours()/24 > maxReportDays {
		return time.Time{}, time.Time{}, errors.Validation("report range must not exceed one year")
	}
	return start, end, nil
}
