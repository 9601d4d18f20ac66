package global

import (
	"go.mongodb.org/mongo-driver/mongo"

	"salon_os/config"
	"salon_os/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB.
// Các giá trị được gán trong cmd/server/init.go khi khởi động.
type MongoDB_CollectionName struct {
	Salons             string // Tên collection cho salon (tenant)
	Users              string // Tên collection cho người dùng
	Clients            string // Tên collection cho khách hàng của salon
	Services           string // Tên collection cho dịch vụ
	Bookings           string // Tên collection cho lịch hẹn
	InventoryItems     string // Tên collection cho hàng tồn kho
	Staff              string // Tên collection cho nhân viên
	PayrollEntries     string // Tên collection cho bảng lương
	Subscriptions      string // Tên collection cho gói thuê bao của salon
	Transactions       string // Tên collection cho giao dịch thanh toán
	OTPs               string // Tên collection cho mã OTP
	VerificationTokens string // Tên collection cho token xác thực sau OTP
	Sessions           string // Tên collection cho phiên đăng nhập
}

// Các biến toàn cục
var MongoDB_Session *mongo.Client                                             // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                        // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
