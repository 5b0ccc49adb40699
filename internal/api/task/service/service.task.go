// Package tasksvc - tạo nhiệm vụ và luồng phân công hai bước:
// SuperAdmin → Admin (initiallyAssignedTo), Admin → Employees (assignedTo).
package tasksvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	authmodels "task_manager/internal/api/auth/models"
	basesvc "task_manager/internal/api/base/service"
	taskdto "task_manager/internal/api/task/dto"
	models "task_manager/internal/api/task/models"
	"task_manager/internal/common"
	"task_manager/internal/logger"
	"task_manager/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateTask tạo nhiệm vụ mới ở trạng thái Pending, chưa phân công.
// Dự án đích đã được validator kiểm tra tồn tại (tag exists=projects).
func (s *TaskService) CreateTask(ctx context.Context, input *taskdto.CreateTaskInput, creator models.PrincipalRef) (*models.Task, error) {
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	deadlines := make([]models.DepartmentDeadline, 0, len(input.DepartmentDeadlines))
	for _, d := range input.DepartmentDeadlines {
		deadlines = append(deadlines, models.DepartmentDeadline{
			Department: d.Department,
			Deadline:   d.Deadline,
		})
	}

	task := models.Task{
		Title:               input.Title,
		Description:         input.Description,
		Project:             utility.String2ObjectID(input.Project),
		Status:              models.StatusPending,
		Priority:            priority,
		CreatedBy:           creator,
		CurrentDepartment:   input.CurrentDepartment,
		NextDepartment:      input.NextDepartment,
		Deadline:            input.Deadline,
		AssignedTo:          []models.AssignedEntry{},
		DepartmentDeadlines: deadlines,
		SubmissionFiles:     []models.SubmissionFile{},
		UpdateLogs: []models.UpdateLog{
			{
				UpdatedBy:     creator.ID,
				UpdatedByRole: creator.Role,
				Note:          "Tạo nhiệm vụ",
				Timestamp:     utility.CurrentTimeInMilli(),
			},
		},
	}

	created, err := s.Tasks.InsertOne(ctx, task)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AssignTask phân công nhiệm vụ, rẽ nhánh theo role của người gọi:
//   - SuperAdmin: giao cho một Admin (phần tử đầu của recipients), trạng thái
//     giữ nguyên Pending.
//   - Admin: giao cho các Employee cùng phòng ban hiện tại của nhiệm vụ;
//     người ngoài phòng ban bị loại im lặng; không còn ai hợp lệ → 400.
//     Trạng thái chuyển In-Progress.
//
// Mọi thay đổi trên document nhiệm vụ gói trong một FindOneAndUpdate duy nhất
// ($set/$addToSet/$push) nên hai lời gọi song song không ghi đè lẫn nhau.
func (s *TaskService) AssignTask(ctx context.Context, taskID primitive.ObjectID, recipients []primitive.ObjectID, caller models.PrincipalRef) (*models.Task, error) {
	// Chặn role không có quyền phân công trước khi chạm tới dữ liệu
	if caller.Role != authmodels.RoleSuperAdmin && caller.Role != authmodels.RoleAdmin {
		return nil, common.ErrForbidden
	}

	task, err := s.Tasks.FindOneById(ctx, taskID)
	if err != nil {
		return nil, common.ErrNotFound
	}

	recipients = utility.Dedupe(recipients)

	if caller.Role == authmodels.RoleSuperAdmin {
		return s.assignToAdmin(ctx, &task, recipients[0], caller)
	}
	return s.assignToEmployees(ctx, &task, recipients, caller)
}

// assignToAdmin xử lý nhánh SuperAdmin → Admin.
func (s *TaskService) assignToAdmin(ctx context.Context, task *models.Task, adminID primitive.ObjectID, caller models.PrincipalRef) (*models.Task, error) {
	if task.CreatedBy.Role != authmodels.RoleSuperAdmin {
		return nil, common.ErrForbidden
	}

	admin, err := s.Admins.FindOneById(ctx, adminID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"initiallyAssignedTo": admin.ID,
			"initiallyAssignedBy": caller,
		},
		Push: map[string]interface{}{
			"updateLogs": models.UpdateLog{
				UpdatedBy:     caller.ID,
				UpdatedByRole: caller.Role,
				Note:          fmt.Sprintf("Giao nhiệm vụ cho admin %s (phòng %s)", admin.Name, admin.Department),
				Timestamp:     utility.CurrentTimeInMilli(),
			},
		},
	}

	updated, err := s.Tasks.FindOneAndUpdate(ctx, bson.M{"_id": task.ID}, update, nil)
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"task_id":  task.ID.Hex(),
		"admin_id": admin.ID.Hex(),
	}).Info("Giao nhiệm vụ cho admin")

	return &updated, nil
}

// buildAssignmentEntries dựng các mục assignedTo từ danh sách employee đã lọc
// theo phòng ban hiện tại của nhiệm vụ. Danh sách rỗng nghĩa là mọi recipient
// đều ngoài phòng ban → 400. newlyAssigned chỉ gồm nhân viên chưa có trong
// assignedTo, dùng để tăng taskStats.assigned đúng một lần.
func buildAssignmentEntries(task *models.Task, employees []authmodels.Employee) ([]models.AssignedEntry, []string, []primitive.ObjectID, error) {
	if len(employees) == 0 {
		return nil, nil, nil, common.ErrNoAssignee
	}

	entries := make([]models.AssignedEntry, 0, len(employees))
	names := make([]string, 0, len(employees))
	newlyAssigned := make([]primitive.ObjectID, 0, len(employees))
	for _, e := range employees {
		entries = append(entries, models.AssignedEntry{
			EmployeeID: e.ID,
			Department: e.Department,
		})
		names = append(names, e.Name)
		if !task.HasAssignee(e.ID, e.Department) {
			newlyAssigned = append(newlyAssigned, e.ID)
		}
	}
	return entries, names, newlyAssigned, nil
}

// assignToEmployees xử lý nhánh Admin → Employees.
func (s *TaskService) assignToEmployees(ctx context.Context, task *models.Task, recipients []primitive.ObjectID, caller models.PrincipalRef) (*models.Task, error) {
	// Chỉ employee thuộc phòng ban hiện tại của nhiệm vụ mới hợp lệ,
	// các id khác phòng ban bị loại khỏi tập phân công
	employees, err := s.Employees.Find(ctx, bson.M{
		"_id":        bson.M{"$in": recipients},
		"department": task.CurrentDepartment,
	}, nil)
	if err != nil {
		return nil, err
	}

	entries, names, newlyAssigned, err := buildAssignmentEntries(task, employees)
	if err != nil {
		return nil, err
	}

	// $addToSet giữ assignedTo là một set: phân công lặp không tạo mục trùng
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": models.StatusInProgress,
		},
		AddToSet: map[string]interface{}{
			"assignedTo": bson.M{"$each": entries},
		},
		Push: map[string]interface{}{
			"updateLogs": models.UpdateLog{
				UpdatedBy:     caller.ID,
				UpdatedByRole: caller.Role,
				Note:          fmt.Sprintf("Phân công nhiệm vụ cho nhân viên: %s", strings.Join(names, ", ")),
				Timestamp:     utility.CurrentTimeInMilli(),
			},
		},
	}

	updated, err := s.Tasks.FindOneAndUpdate(ctx, bson.M{"_id": task.ID}, update, nil)
	if err != nil {
		return nil, err
	}

	// Tăng counter taskStats.assigned cho các nhân viên mới được phân công
	if len(newlyAssigned) > 0 {
		statUpdate := &basesvc.UpdateData{
			Inc: map[string]interface{}{"taskStats.assigned": int64(1)},
		}
		if _, err := s.Employees.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": newlyAssigned}}, statUpdate, nil); err != nil {
			logger.GetErrorLogger().WithError(err).Warn("Không thể cập nhật taskStats.assigned")
		}
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"task_id":   task.ID.Hex(),
		"employees": len(entries),
	}).Info("Phân công nhiệm vụ cho nhân viên")

	return &updated, nil
}

// statusGuardError dịch lỗi từ update có ràng buộc trạng thái trong filter:
// nhiệm vụ đã được xác nhận tồn tại trước đó, nên filter không khớp nghĩa là
// nó vừa rời In-Progress trong một lời gọi song song → 400, không phải 404.
func statusGuardError(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrInvalidState
	}
	return err
}

// UpdateTaskStatus chuyển nhiệm vụ sang trạng thái kết thúc (Completed/Rejected)
// và tăng counter tương ứng trên từng nhân viên được phân công.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, taskID primitive.ObjectID, input *taskdto.UpdateTaskStatusInput, caller models.PrincipalRef) (*models.Task, error) {
	task, err := s.Tasks.FindOneById(ctx, taskID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if task.Status != models.StatusInProgress {
		return nil, common.ErrInvalidState
	}

	note := input.Note
	if note == "" {
		note = fmt.Sprintf("Chuyển trạng thái nhiệm vụ sang %s", input.Status)
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": input.Status,
		},
		Push: map[string]interface{}{
			"updateLogs": models.UpdateLog{
				UpdatedBy:     caller.ID,
				UpdatedByRole: caller.Role,
				Note:          note,
				Timestamp:     utility.CurrentTimeInMilli(),
			},
		},
	}

	// Ràng buộc trạng thái trong filter để hai lời gọi song song không
	// cùng kết thúc một nhiệm vụ
	updated, err := s.Tasks.FindOneAndUpdate(ctx, bson.M{
		"_id":    task.ID,
		"status": models.StatusInProgress,
	}, update, nil)
	if err != nil {
		return nil, statusGuardError(err)
	}

	statField := "taskStats.completed"
	if input.Status == models.StatusRejected {
		statField = "taskStats.rejected"
	}
	assigneeIDs := make([]primitive.ObjectID, 0, len(task.AssignedTo))
	for _, entry := range task.AssignedTo {
		assigneeIDs = append(assigneeIDs, entry.EmployeeID)
	}
	if len(assigneeIDs) > 0 {
		statUpdate := &basesvc.UpdateData{
			Inc: map[string]interface{}{statField: int64(1)},
		}
		if _, err := s.Employees.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": assigneeIDs}}, statUpdate, nil); err != nil {
			logger.GetErrorLogger().WithError(err).Warn("Không thể cập nhật taskStats")
		}
	}

	return &updated, nil
}
