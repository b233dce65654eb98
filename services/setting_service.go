package services

import (
	"hms/constants"
	"hms/errors"
	"hms/models"
	"hms/services/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingService là kho key-value cho tham số cấu hình nghiệp vụ
type SettingService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db, log: logger.NewNamedLogger("settings", logger.InfoLevel)}
}

// List trả về tất cả settings
func (s *SettingService) List() ([]models.Setting, error) {
	var settings []models.Setting
	if err := s.db.Order("key").Find(&settings).Error; err != nil {
		return nil, errors.Internal(err)
	}
	return settings, nil
}

// Get lấy setting theo key
func (s *SettingService) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.First(&setting, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("setting")
		}
		return nil, errors.Internal(err)
	}
	return &setting, nil
}

// Upsert ghi setting, tạo mới khi key chưa tồn tại
func (s *SettingService) Upsert(key, value string) (*models.Setting, error) {
	setting := models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, errors.Internal(err)
	}
	return &setting, nil
}

// TaxRate đọc thuế suất từ setting tax_rate; mặc định 0 khi chưa cấu hình
// hoặc giá trị không parse được.
func (s *SettingService) TaxRate(tx *gorm.DB) decimal.Decimal {
	var setting models.Setting
	if err := tx.First(&setting, "key = ?", constants.SettingTaxRate).Error; err != nil {
		return decimal.Zero
	}
	rate, err := decimal.NewFromString(setting.Value)
	if err != nil {
		s.log.Error("invalid tax_rate setting %q: %v", setting.Value, err)
		return decimal.Zero
	}
	return rate
}
