package main

import (
	"context"

	"task_manager/config"
	authmodels "task_manager/internal/api/auth/models"
	taskmodels "task_manager/internal/api/task/models"
	"task_manager/internal/database"
	"task_manager/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators: strong_password, object_id, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và các collection nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index từ tag của model
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.SuperAdmins), authmodels.SuperAdmin{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Admins), authmodels.Admin{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Employees), authmodels.Employee{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Projects), taskmodels.Project{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tasks), taskmodels.Task{})

	// Index bổ sung trên các trường lồng nhau của tasks (không biểu diễn được bằng tag)
	if err := database.CreateTaskAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Warnf("Failed to create task additional indexes: %v", err)
	}
}
