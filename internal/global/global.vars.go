package global

import (
	"task_manager/config"
	"task_manager/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	SuperAdmins string // Tên collection cho quản trị viên cấp cao
	Admins      string // Tên collection cho quản trị viên phòng ban
	Employees   string // Tên collection cho nhân viên
	Projects    string // Tên collection cho dự án
	Tasks       string // Tên collection cho nhiệm vụ
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                     // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = MongoDB_CollectionName{
	SuperAdmins: "super_admins",
	Admins:      "admins",
	Employees:   "employees",
	Projects:    "projects",
	Tasks:       "tasks",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
