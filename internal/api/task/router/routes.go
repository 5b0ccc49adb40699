// Package router đăng ký các route thuộc domain task: dự án, nhiệm vụ,
// phân công, nộp tệp và mặt truy vấn.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "task_manager/internal/api/auth/models"
	"task_manager/internal/api/middleware"
	apirouter "task_manager/internal/api/router"
	taskhdl "task_manager/internal/api/task/handler"
)

// Register đăng ký tất cả route task lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	taskHandler, err := taskhdl.NewTaskHandler()
	if err != nil {
		return fmt.Errorf("tạo TaskHandler: %w", err)
	}

	authenticated := middleware.AuthMiddleware()
	creators := middleware.AuthMiddleware(authmodels.RoleSuperAdmin, authmodels.RoleAdmin)
	adminOnly := middleware.AuthMiddleware(authmodels.RoleAdmin)
	employeeOnly := middleware.AuthMiddleware(authmodels.RoleEmployee)

	// GET /tasks/get-projects là route công khai duy nhất của domain
	v1.Group("/tasks").Get("/get-projects", taskHandler.HandleGetProjects)

	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "POST", "/create-project", []fiber.Handler{creators}, taskHandler.HandleCreateProject)
	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "POST", "/create-task", []fiber.Handler{creators}, taskHandler.HandleCreateTask)
	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "POST", "/assign-task/:taskId", []fiber.Handler{creators}, taskHandler.HandleAssignTask)
	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "PATCH", "/update-task-status/:taskId", []fiber.Handler{creators}, taskHandler.HandleUpdateTaskStatus)

	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "POST", "/submit-task-by-employee/:taskId", []fiber.Handler{employeeOnly}, taskHandler.HandleSubmitTask)
	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "PATCH", "/validate-submission-by-employee/:taskId/:employeeId", []fiber.Handler{employeeOnly}, taskHandler.HandleValidateSubmission)
	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "DELETE", "/delete-submission-by-employee/:taskId/:employeeId", []fiber.Handler{employeeOnly}, taskHandler.HandleDeleteSubmission)

	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "GET", "/get-tasks-by-creator", []fiber.Handler{creators}, taskHandler.HandleGetTasksByCreator)
	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "GET", "/get-tasks-assigned-to-admin", []fiber.Handler{adminOnly}, taskHandler.HandleGetTasksAssignedToAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "GET", "/get-assigned-employees/:taskId", []fiber.Handler{authenticated}, taskHandler.HandleGetAssignedEmployees)
	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "GET", "/get-tasks-assigned-to-employee/:employeeId", []fiber.Handler{authenticated}, taskHandler.HandleGetTasksAssignedToEmployee)
	apirouter.RegisterRouteWithMiddleware(v1, "/tasks", "GET", "/get-tasks-by-project/:projectId", []fiber.Handler{authenticated}, taskHandler.HandleGetTasksByProject)

	return nil
}
