package controllers

import (
	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// InvoiceController xử lý các endpoint hóa đơn và thanh toán
type InvoiceController struct {
	billing *services.BillingService
	reports *services.ReportService
}

func NewInvoiceController(billing *services.BillingService, reports *services.ReportService) *InvoiceController {
	return &InvoiceController{billing: billing, reports: reports}
}

// List lấy danh sách hóa đơn có phân trang, lọc theo status
func (ctl *InvoiceController) List(c *gin.Context) {
	page, limit := parsePagination(c)
	status := c.Query("status")

	invoices, total, err := ctl.billing.ListInvoices(page, limit, status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithPagination(c, invoices, page, limit, total)
}

// Get lấy một hóa đơn kèm tổng đã trả
func (ctl *InvoiceController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := ctl.billing.GetInvoice(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, invoice)
}

// Create lập hóa đơn cho một reservation
func (ctl *InvoiceController) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := ctl.billing.CreateInvoice(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, invoice)
}

// ListPayments lấy các khoản thanh toán của một hóa đơn
func (ctl *InvoiceController) ListPayments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payments, err := ctl.billing.ListPayments(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, payments)
}

// RecordPayment ghi nhận một khoản thanh toán cho hóa đơn
func (ctl *InvoiceController) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := ctl.billing.RecordPayment(id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctl.reports.InvalidateDashboardCache()
	response.Success(c, payment)
}
