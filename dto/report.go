package dto

// DashboardStats là DTO cho thống kê tổng quan dashboard
type DashboardStats struct {
	TotalRooms       int               `json:"totalRooms"`
	OccupiedRooms    int               `json:"occupiedRooms"`
	AvailableRooms   int               `json:"availableRooms"`
	MaintenanceRooms int               `json:"maintenanceRooms"`
	RevenueBreakdown []RoomTypeRevenue `json:"revenueBreakdown"`
}

// RoomTypeRevenue là doanh thu theo loại phòng
type RoomTypeRevenue struct {
	RoomType string `json:"roomType"`
	Revenue  string `json:"revenue"`
}

// OccupancyDay là số liệu lấp đầy của một ngày
type OccupancyDay struct {
	Date      string  `json:"date"`
	Occupied  int     `json:"occupied"`
	Available int     `json:"available"`
	Rate      float64 `json:"rate"`
}

// OccupancyReport là báo cáo lấp đầy theo khoảng ngày
type OccupancyReport struct {
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	TotalRooms int            `json:"totalRooms"`
	Daily      []OccupancyDay `json:"daily"`
}

// RevenueDay là doanh thu của một ngày
type RevenueDay struct {
	Date    string `json:"date"`
	Revenue string `json:"revenue"`
}

// RevenueReport là báo cáo doanh thu theo khoảng ngày
type RevenueReport struct {
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	TotalRevenue string       `json:"totalRevenue"`
	Daily        []RevenueDay `json:"daily"`
}

// ActivityEntry là một dòng hoạt động gần đây trên dashboard
type ActivityEntry struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Time string `json:"time"`
}
