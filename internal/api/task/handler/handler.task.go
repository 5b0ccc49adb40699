// Package taskhdl - Handler tạo/phân công nhiệm vụ và luồng nộp tệp.
package taskhdl

import (
	"fmt"
	"strconv"

	basehdl "task_manager/internal/api/base/handler"
	taskdto "task_manager/internal/api/task/dto"
	models "task_manager/internal/api/task/models"
	tasksvc "task_manager/internal/api/task/service"
	"task_manager/internal/common"
	"task_manager/internal/logger"
	"task_manager/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// TaskHandler xử lý các route thuộc domain task.
type TaskHandler struct {
	TaskService *tasksvc.TaskService
}

// NewTaskHandler tạo TaskHandler mới.
func NewTaskHandler() (*TaskHandler, error) {
	taskService, err := tasksvc.NewTaskService()
	if err != nil {
		return nil, fmt.Errorf("tạo TaskService: %w", err)
	}
	return &TaskHandler{TaskService: taskService}, nil
}

// principalFromContext dựng PrincipalRef {role, id} từ Locals do AuthMiddleware đặt.
func principalFromContext(c fiber.Ctx) (models.PrincipalRef, error) {
	userID, err := basehdl.UserIDFromContext(c)
	if err != nil {
		return models.PrincipalRef{}, err
	}
	return models.PrincipalRef{
		Role: basehdl.RoleFromContext(c),
		ID:   userID,
	}, nil
}

// HandleCreateProject xử lý POST /tasks/create-project.
func (h *TaskHandler) HandleCreateProject(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		caller, err := principalFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input, err := basehdl.ParseAndValidateBody[taskdto.CreateProjectInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		project, err := h.TaskService.CreateProject(c.Context(), input, caller)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogAction("create_project", c, map[string]interface{}{"name": input.Name})
		return basehdl.HandleCreatedResponse(c, project)
	})
}

// HandleGetProjects xử lý GET /tasks/get-projects (công khai).
// Có query param "page" thì trả về kết quả phân trang, mặc định trả về toàn bộ.
func (h *TaskHandler) HandleGetProjects(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.ParseInt(pageStr, 10, 64)
			if err != nil || page < 1 {
				return basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
			}
			limit := int64(20)
			if limitStr := c.Query("limit"); limitStr != "" {
				limit, err = strconv.ParseInt(limitStr, 10, 64)
				if err != nil || limit < 1 || limit > 100 {
					return basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
				}
			}
			result, err := h.TaskService.ListProjectsPaginated(c.Context(), page, limit)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			return basehdl.HandleResponse(c, result, nil)
		}

		projects, err := h.TaskService.ListProjects(c.Context())
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, projects, nil)
	})
}

// HandleCreateTask xử lý POST /tasks/create-task.
func (h *TaskHandler) HandleCreateTask(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		caller, err := principalFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input, err := basehdl.ParseAndValidateBody[taskdto.CreateTaskInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		task, err := h.TaskService.CreateTask(c.Context(), input, caller)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogTask("create_task", task.ID.Hex(), c, map[string]interface{}{"title": input.Title})
		return basehdl.HandleCreatedResponse(c, task)
	})
}

// HandleAssignTask xử lý POST /tasks/assign-task/:taskId.
func (h *TaskHandler) HandleAssignTask(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		caller, err := principalFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		taskID, err := basehdl.ParseObjectIDParam(c, "taskId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input, err := basehdl.ParseAndValidateBody[taskdto.AssignTaskInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		recipients := utility.StringArray2ObjectIDArray(input.Recipients)
		task, err := h.TaskService.AssignTask(c.Context(), taskID, recipients, caller)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogTask("assign_task", taskID.Hex(), c, map[string]interface{}{"recipients": len(recipients)})
		return basehdl.HandleResponse(c, task, nil)
	})
}

// HandleUpdateTaskStatus xử lý PATCH /tasks/update-task-status/:taskId.
func (h *TaskHandler) HandleUpdateTaskStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		caller, err := principalFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		taskID, err := basehdl.ParseObjectIDParam(c, "taskId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input, err := basehdl.ParseAndValidateBody[taskdto.UpdateTaskStatusInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		task, err := h.TaskService.UpdateTaskStatus(c.Context(), taskID, input, caller)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogTask("update_task_status", taskID.Hex(), c, map[string]interface{}{"status": input.Status})
		return basehdl.HandleResponse(c, task, nil)
	})
}

// HandleSubmitTask xử lý POST /tasks/submit-task-by-employee/:taskId.
// Body là multipart: field "files" chứa tối đa UploadMaxFiles tệp,
// kèm "note" và "department".
func (h *TaskHandler) HandleSubmitTask(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		employeeID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		taskID, err := basehdl.ParseObjectIDParam(c, "taskId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input, err := basehdl.ParseAndValidateBody[taskdto.SubmitTaskInput](c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		form, err := c.MultipartForm()
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
		}
		files := form.File["files"]

		task, err := h.TaskService.SubmitTask(c.Context(), taskID, employeeID, input.Department, input.Note, files)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogTask("submit_task", taskID.Hex(), c, map[string]interface{}{"files": len(files)})
		return basehdl.HandleResponse(c, task, nil)
	})
}

// HandleValidateSubmission xử lý PATCH /tasks/validate-submission-by-employee/:taskId/:employeeId.
// :employeeId phải là chính người gọi.
func (h *TaskHandler) HandleValidateSubmission(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		callerID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		taskID, err := basehdl.ParseObjectIDParam(c, "taskId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		employeeID, err := basehdl.ParseObjectIDParam(c, "employeeId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		task, err := h.TaskService.ValidateSubmission(c.Context(), taskID, employeeID, callerID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogTask("validate_submission", taskID.Hex(), c, map[string]interface{}{"employee_id": employeeID.Hex()})
		return basehdl.HandleResponse(c, task, nil)
	})
}

// HandleDeleteSubmission xử lý DELETE /tasks/delete-submission-by-employee/:taskId/:employeeId.
// :employeeId phải là chính người gọi.
func (h *TaskHandler) HandleDeleteSubmission(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		callerID, err := basehdl.UserIDFromContext(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		taskID, err := basehdl.ParseObjectIDParam(c, "taskId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		employeeID, err := basehdl.ParseObjectIDParam(c, "employeeId")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		task, err := h.TaskService.DeleteSubmission(c.Context(), taskID, employeeID, callerID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogTask("delete_submission", taskID.Hex(), c, map[string]interface{}{"employee_id": employeeID.Hex()})
		return basehdl.HandleResponse(c, task, nil)
	})
}
