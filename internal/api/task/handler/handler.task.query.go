// Package taskhdl - Handler mặt truy vấn chỉ đọc của domain task.
package taskhdl

import (
	basehdl "task_manager/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// HandleGetTasksByCreator xử lý GET /tasks/get-tasks-by-creator.
// Trả về các nhiệm vụ do chính principal đang gọi tạo.
func (h *TaskHandler) HandleGetTasksByCreator(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		caller, err := principalFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		tasks, err := h.TaskService.TasksByCreator(c.Context(), caller)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, tasks, nil)
	})
}

// HandleGetTasksAssignedToAdmin xử lý GET /tasks/get-tasks-assigned-to-admin.
// Trả về các nhiệm vụ SuperAdmin đã giao cho Admin đang gọi.
func (h *TaskHandler) HandleGetTasksAssignedToAdmin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		adminID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		tasks, err := h.TaskService.TasksAssignedToAdmin(c.Context(), adminID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, tasks, nil)
	})
}

// HandleGetAssignedEmployees xử lý GET /tasks/get-assigned-employees/:taskId.
func (h *TaskHandler) HandleGetAssignedEmployees(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		taskID, err := basehdl.ParseObjectIDParam(c, "taskId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		employees, err := h.TaskService.AssignedEmployees(c.Context(), taskID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, employees, nil)
	})
}

// HandleGetTasksAssignedToEmployee xử lý GET /tasks/get-tasks-assigned-to-employee/:employeeId.
func (h *TaskHandler) HandleGetTasksAssignedToEmployee(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		employeeID, err := basehdl.ParseObjectIDParam(c, "employeeId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		tasks, err := h.TaskService.TasksAssignedToEmployee(c.Context(), employeeID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, tasks, nil)
	})
}

// HandleGetTasksByProject xử lý GET /tasks/get-tasks-by-project/:projectId.
func (h *TaskHandler) HandleGetTasksByProject(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		projectID, err := basehdl.ParseObjectIDParam(c, "projectId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		tasks, err := h.TaskService.TasksByProject(c.Context(), projectID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, tasks, nil)
	})
}
