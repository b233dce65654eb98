package controllers

import (
	"strconv"

	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// ReportController xử lý các endpoint báo cáo và dashboard
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// Dashboard trả về thống kê tổng quan (đã cache)
func (ctl *ReportController) Dashboard(c *gin.Context) {
	stats, err := ctl.reports.DashboardStats()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, stats)
}

// Occupancy trả về báo cáo lấp đầy theo khoảng ngày
func (ctl *ReportController) Occupancy(c *gin.Context) {
	report, err := ctl.reports.Occupancy(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, report)
}

// Revenue trả về báo cáo doanh thu theo khoảng ngày
func (ctl *ReportController) Revenue(c *gin.Context) {
	report, err := ctl.reports.Revenue(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, report)
}

// Activity trả về hoạt động gần đây (reservation và payment trong 24h)
func (ctl *ReportController) Activity(c *gin.Context) {
	limit := 20
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	entries, err := ctl.reports.RecentActivity(limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, entries)
}
