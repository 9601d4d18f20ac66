package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Tất cả giá trị được đọc từ file env theo môi trường (GO_ENV) hoặc biến môi trường trực tiếp.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:"8080"`                // Cổng HTTP server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`          // URI kết nối MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                  // Tên database chính
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`              // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`          // Số request tối đa trong window (0 = disable)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`        // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`     // Bật/tắt rate limiting
	OTP_TTL_Minutes       int    `env:"OTP_TTL_MINUTES" envDefault:"5"`           // Thời gian sống của mã OTP (phút)
	Session_TTL_Days      int    `env:"SESSION_TTL_DAYS" envDefault:"7"`          // Thời gian sống của session (ngày)
	Trial_Days            int    `env:"TRIAL_DAYS" envDefault:"14"`               // Số ngày dùng thử khi onboarding
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường.
// Đi lên từ thư mục hiện tại cho đến khi tìm thấy thư mục config/env.
func getEnvPath() string {
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Dùng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", envName))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env (nếu có) và biến môi trường.
// Trả về nil nếu parse thất bại — caller quyết định fatal hay không.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// File env không bắt buộc — biến môi trường trực tiếp vẫn dùng được
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
