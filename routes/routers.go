package routes

import (
	"hms/constants"
	"hms/controllers"
	middlewares "hms/middleware"
	"hms/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes đăng ký toàn bộ HTTP routes dưới /api/v1.
// Thao tác đọc mở cho staff và admin; thao tác ghi danh mục, setting
// và xóa cứng chỉ dành cho admin.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {
	availability := services.NewAvailabilityService(db)
	settings := services.NewSettingService(db)
	guests := services.NewGuestService(services.GuestServiceOptions{DB: db})
	catalog := services.NewCatalogService(services.CatalogServiceOptions{DB: db})
	reservations := services.NewReservationService(services.ReservationServiceOptions{
		DB:           db,
		Guests:       guests,
		Availability: availability,
	})
	billing := services.NewBillingService(services.BillingServiceOptions{DB: db, Settings: settings})
	reports := services.NewReportService(services.ReportServiceOptions{DB: db, Redis: redisCli})
	serviceCatalog := services.NewServiceCatalog(db)

	roomTypeController := controllers.NewRoomTypeController(catalog)
	roomController := controllers.NewRoomController(catalog)
	guestController := controllers.NewGuestController(guests)
	reservationController := controllers.NewReservationController(reservations, availability, reports)
	invoiceController := controllers.NewInvoiceController(billing, reports)
	settingController := controllers.NewSettingController(settings)
	reportController := controllers.NewReportController(reports)
	serviceController := controllers.NewServiceController(serviceCatalog)

	staff := middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff)
	admin := middlewares.AuthMiddleware(constants.RoleAdmin)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.GET("/room-types", staff, roomTypeController.List)
	v1.GET("/room-types/:id", staff, roomTypeController.Get)
	v1.POST("/room-types", admin, roomTypeController.Create)
	v1.PUT("/room-types/:id", admin, roomTypeController.Update)
	v1.DELETE("/room-types/:id", admin, roomTypeController.Delete)

	v1.GET("/rooms", staff, roomController.List)
	v1.GET("/rooms/:id", staff, roomController.Get)
	v1.POST("/rooms", admin, roomController.Create)
	v1.PUT("/rooms/:id", admin, roomController.Update)
	v1.DELETE("/rooms/:id", admin, roomController.Delete)

	v1.GET("/guests", staff, guestController.List)
	v1.GET("/guests/search", staff, guestController.Search)
	v1.GET("/guests/:id", staff, guestController.Get)
	v1.POST("/guests", staff, guestController.Create)
	v1.PUT("/guests/:id", staff, guestController.Update)
	v1.DELETE("/guests/:id", admin, guestController.Delete)

	v1.GET("/availability", staff, reservationController.CheckAvailability)

	v1.GET("/reservations", staff, reservationController.List)
	v1.GET("/reservations/:id", staff, reservationController.Get)
	v1.POST("/reservations", staff, reservationController.Create)
	v1.PUT("/reservations/:id", staff, reservationController.Update)
	v1.POST("/reservations/:id/cancel", staff, reservationController.Cancel)
	v1.POST("/reservations/:id/checkin", staff, reservationController.CheckIn)
	v1.POST("/reservations/:id/checkout", staff, reservationController.CheckOut)
	v1.DELETE("/reservations/:id", admin, reservationController.Delete)

	v1.GET("/invoices", staff, invoiceController.List)
	v1.GET("/invoices/:id", staff, invoiceController.Get)
	v1.POST("/invoices", staff, invoiceController.Create)
	v1.GET("/invoices/:id/payments", staff, invoiceController.ListPayments)
	v1.POST("/invoices/:id/payments", staff, invoiceController.RecordPayment)

	v1.GET("/services", staff, serviceController.List)
	v1.GET("/services/:id", staff, serviceController.Get)
	v1.POST("/services", admin, serviceController.Create)
	v1.PUT("/services/:id", admin, serviceController.Update)
	v1.DELETE("/services/:id", admin, serviceController.Delete)

	v1.GET("/settings", admin, settingController.List)
	v1.GET("/settings/:key", admin, settingController.Get)
	v1.PUT("/settings/:key", admin, settingController.Upsert)

	v1.GET("/dashboard/stats", staff, reportController.Dashboard)
	v1.GET("/dashboard/activity", staff, reportController.Activity)
	v1.GET("/reports/occupancy", staff, reportController.Occupancy)
	v1.GET("/reports/revenue", staff, reportController.Revenue)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
