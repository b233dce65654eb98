package controllers

import (
	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// ServiceController xử lý các endpoint danh mục dịch vụ phụ trợ
type ServiceController struct {
	catalog *services.ServiceCatalog
}

func NewServiceController(catalog *services.ServiceCatalog) *ServiceController {
	return &ServiceController{catalog: catalog}
}

// List lấy danh sách dịch vụ, lọc theo status nếu có
func (ctl *ServiceController) List(c *gin.Context) {
	items, err := ctl.catalog.List(c.Query("status"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, items)
}

// Get lấy một dịch vụ theo ID
func (ctl *ServiceController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := ctl.catalog.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

// Create tạo dịch vụ mới
func (ctl *ServiceController) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := ctl.catalog.Create(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

// Update cập nhật dịch vụ
func (ctl *ServiceController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := ctl.catalog.Update(id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

// Delete xóa dịch vụ
func (ctl *ServiceController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctl.catalog.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}
