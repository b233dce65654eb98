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

// ServiceCatalog quản lý danh mục dịch vụ phụ trợ (giặt ủi, spa, đưa đón)
type ServiceCatalog struct {
	db  *gorm.DB
	log logger.Logger
}

func NewServiceCatalog(db *gorm.DB) *ServiceCatalog {
	return &ServiceCatalog{db: db, log: logger.NewNamedLogger("services", logger.InfoLevel)}
}

func (s *ServiceCatalog) List(status string) ([]dto.ServiceResponse, error) {
	query := s.db.Model(&models.Service{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var items []models.Service
	if err := query.Order("name ASC").Find(&items).Error; err != nil {
		return nil, errors.Internal(err)
	}

	responses := make([]dto.ServiceResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toServiceResponse(&items[i]))
	}
	return responses, nil
}

func (s *ServiceCatalog) Get(id uint) (*dto.ServiceResponse, error) {
	var item models.Service
	if err := s.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("service")
		}
		return nil, errors.Internal(err)
	}
	resp := toServiceResponse(&item)
	return &resp, nil
}

func (s *ServiceCatalog) Create(req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	price, err := validator.ParsePositiveMoney(req.Price)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = constants.ServiceStatusActive
	}
	if status != constants.ServiceStatusActive && status != constants.ServiceStatusInactive {
		return nil, errors.Validation("invalid service status")
	}

	item := models.Service{
		Name:        req.Name,
		Type:        req.Type,
		Price:       RoundMoney(price),
		Status:      status,
		Description: req.Description,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, errors.Internal(err)
	}

	s.log.Info("service %d (%s) created", item.ID, item.Name)
	resp := toServiceResponse(&item)
	return &resp, nil
}

func (s *ServiceCatalog) Update(id uint, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	var item models.Service
	if err := s.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("service")
		}
		return nil, errors.Internal(err)
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Type != "" {
		item.Type = req.Type
	}
	if req.Price != "" {
		price, err := validator.ParsePositiveMoney(req.Price)
		if err != nil {
			return nil, err
		}
		item.Price = RoundMoney(price)
	}
	if req.Status != "" {
		if req.Status != constants.ServiceStatusActive && req.Status != constants.ServiceStatusInactive {
			return nil, errors.Validation("invalid service status")
		}
		item.Status = req.Status
	}
	if req.Description != "" {
		item.Description = req.Description
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, errors.Internal(err)
	}
	resp := toServiceResponse(&item)
	return &resp, nil
}

func (s *ServiceCatalog) Delete(id uint) error {
	result := s.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return errors.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("service")
	}
	return nil
}

func toServiceResponse(item *models.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          item.ID,
		Name:        item.Name,
		Type:        item.Type,
		Price:       item.Price.StringFixed(2),
		Status:      item.Status,
		Description: item.Description,
	}
}
