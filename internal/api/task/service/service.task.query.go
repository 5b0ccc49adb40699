// Package tasksvc - mặt truy vấn chỉ đọc của domain task.
// Mọi danh sách đều sắp xếp theo thời điểm tạo giảm dần.
package tasksvc

import (
	"context"

	authmodels "task_manager/internal/api/auth/models"
	models "task_manager/internal/api/task/models"
	"task_manager/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sortNewestFirst là thứ tự mặc định của mọi truy vấn danh sách nhiệm vụ.
func sortNewestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// TasksByCreator trả về các nhiệm vụ do principal tạo. Cặp {role, id} phải
// khớp đồng thời để không lẫn giữa các collection tài khoản.
func (s *TaskService) TasksByCreator(ctx context.Context, creator models.PrincipalRef) ([]models.Task, error) {
	return s.Tasks.Find(ctx, bson.M{
		"createdBy.role": creator.Role,
		"createdBy.id":   creator.ID,
	}, sortNewestFirst())
}

// TasksAssignedToAdmin trả về các nhiệm vụ SuperAdmin đã giao cho một Admin.
func (s *TaskService) TasksAssignedToAdmin(ctx context.Context, adminID primitive.ObjectID) ([]models.Task, error) {
	return s.Tasks.Find(ctx, bson.M{"initiallyAssignedTo": adminID}, sortNewestFirst())
}

// TasksAssignedToEmployee trả về các nhiệm vụ có nhân viên trong assignedTo.
func (s *TaskService) TasksAssignedToEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Task, error) {
	return s.Tasks.Find(ctx, bson.M{"assignedTo.employeeId": employeeID}, sortNewestFirst())
}

// TasksByProject trả về các nhiệm vụ thuộc một dự án.
func (s *TaskService) TasksByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Task, error) {
	if _, err := s.Projects.FindOneById(ctx, projectID); err != nil {
		return nil, common.ErrNotFound
	}
	return s.Tasks.Find(ctx, bson.M{"project": projectID}, sortNewestFirst())
}

// AssignedEmployees giải tham chiếu assignedTo của một nhiệm vụ thành
// danh sách document Employee đầy đủ.
func (s *TaskService) AssignedEmployees(ctx context.Context, taskID primitive.ObjectID) ([]authmodels.Employee, error) {
	task, err := s.Tasks.FindOneById(ctx, taskID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if len(task.AssignedTo) == 0 {
		return []authmodels.Employee{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(task.AssignedTo))
	for _, entry := range task.AssignedTo {
		ids = append(ids, entry.EmployeeID)
	}
	return s.Employees.FindManyByIds(ctx, ids)
}
