package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"salon_os/config"
	"salon_os/internal/database"
	"salon_os/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc.
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Module Auth (tiền tố auth_)
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.OTPs = "auth_otps"
	global.MongoDB_ColNames.VerificationTokens = "auth_verification_tokens"
	global.MongoDB_ColNames.Sessions = "auth_sessions"

	// Salon (tenant) — gốc của mọi scope dữ liệu
	global.MongoDB_ColNames.Salons = "salons"

	// Module CRM (tiền tố crm_)
	global.MongoDB_ColNames.Clients = "crm_clients"

	// Module Catalog
	global.MongoDB_ColNames.Services = "catalog_services"

	// Module Booking
	global.MongoDB_ColNames.Bookings = "bookings"

	// Module Inventory
	global.MongoDB_ColNames.InventoryItems = "inventory_items"

	// Module Payroll (tiền tố payroll_)
	global.MongoDB_ColNames.Staff = "payroll_staff"
	global.MongoDB_ColNames.PayrollEntries = "payroll_entries"

	// Module Billing (tiền tố billing_)
	global.MongoDB_ColNames.Subscriptions = "billing_subscriptions"
	global.MongoDB_ColNames.Transactions = "billing_transactions"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, period_token)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	initIndexes()
}

// initIndexes tạo các index phục vụ truy vấn thường gặp.
// Các mốc thời gian tổng hợp (timestamp, createdAt, startTime) được index kèm
// salonId để báo cáo theo salon không phải quét cả collection.
func initIndexes() {
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	names := global.MongoDB_ColNames

	specs := map[string][]database.IndexSpec{
		names.Users: {
			{Keys: bson.D{{Key: "phone", Value: 1}}, Unique: true},
			{Keys: bson.D{{Key: "salonId", Value: 1}}},
		},
		names.Sessions: {
			{Keys: bson.D{{Key: "token", Value: 1}}, Unique: true},
			{Keys: bson.D{{Key: "expiresAt", Value: 1}}},
		},
		names.OTPs: {
			{Keys: bson.D{{Key: "phone", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		names.VerificationTokens: {
			{Keys: bson.D{{Key: "token", Value: 1}}, Unique: true},
		},
		names.Clients: {
			{Keys: bson.D{{Key: "salonId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		names.Bookings: {
			{Keys: bson.D{{Key: "salonId", Value: 1}, {Key: "startTime", Value: -1}}},
			{Keys: bson.D{{Key: "salonId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		names.InventoryItems: {
			{Keys: bson.D{{Key: "salonId", Value: 1}}},
		},
		names.Staff: {
			{Keys: bson.D{{Key: "salonId", Value: 1}}},
		},
		names.PayrollEntries: {
			{Keys: bson.D{{Key: "salonId", Value: 1}, {Key: "month", Value: -1}}},
		},
		names.Subscriptions: {
			{Keys: bson.D{{Key: "salonId", Value: 1}}, Unique: true},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		names.Transactions: {
			{Keys: bson.D{{Key: "salonId", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for collName, collSpecs := range specs {
		if err := database.EnsureIndexes(db.Collection(collName), collSpecs); err != nil {
			logrus.Warnf("Failed to ensure indexes for %s: %v", collName, err)
		}
	}
	logrus.Info("Ensured indexes")
}

// InitRegistry đăng ký toàn bộ collection vào registry toàn cục.
func InitRegistry() {
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if _, err := global.RegistryDatabase.Register(global.ServerConfig.MongoDB_DBName, db); err != nil {
		logrus.Fatalf("Failed to register database: %v", err)
	}

	names := global.MongoDB_ColNames
	collections := []string{
		names.Salons,
		names.Users,
		names.Clients,
		names.Services,
		names.Bookings,
		names.InventoryItems,
		names.Staff,
		names.PayrollEntries,
		names.Subscriptions,
		names.Transactions,
		names.OTPs,
		names.VerificationTokens,
		names.Sessions,
	}

	for _, name := range collections {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			logrus.Fatalf("Failed to register collection %s: %v", name, err)
		}
	}

	logrus.Infof("Registered %d collections", len(collections))
}
