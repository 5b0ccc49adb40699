// Package tasksvc - luồng nộp tệp của nhân viên: nộp, tự xác nhận, rút lại.
package tasksvc

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	authmodels "task_manager/internal/api/auth/models"
	basesvc "task_manager/internal/api/base/service"
	models "task_manager/internal/api/task/models"
	"task_manager/internal/common"
	"task_manager/internal/global"
	"task_manager/internal/logger"
	"task_manager/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmitTask nộp tệp kết quả cho nhiệm vụ. Người gọi phải xuất hiện trong
// assignedTo với ĐÚNG cặp (employeeId, department) — khớp một trong hai
// trường là không đủ. Mỗi tệp được lưu với tên sinh duy nhất rồi append vào
// submissionFiles cùng một mục nhật ký, tất cả trong một update atomic.
func (s *TaskService) SubmitTask(ctx context.Context, taskID primitive.ObjectID, employeeID primitive.ObjectID, department string, note string, files []*multipart.FileHeader) (*models.Task, error) {
	if len(files) == 0 {
		return nil, common.ErrRequiredField
	}
	if len(files) > global.ServerConfig.UploadMaxFiles {
		return nil, common.ErrTooManyFiles
	}

	task, err := s.Tasks.FindOneById(ctx, taskID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if !task.HasAssignee(employeeID, department) {
		return nil, common.ErrNotAssigned
	}

	// Kiểm tra toàn bộ tệp trước khi ghi tệp đầu tiên
	for _, file := range files {
		if err := utility.ValidateSubmissionFile(file, global.ServerConfig.UploadMaxFileSize); err != nil {
			return nil, err
		}
	}

	destDir := filepath.Join(global.ServerConfig.UploadDir, "submissions", taskID.Hex())
	now := utility.CurrentTimeInMilli()
	entries := make([]models.SubmissionFile, 0, len(files))
	savedPaths := make([]string, 0, len(files))
	for _, file := range files {
		storedName := utility.GenerateStoredFileName("submission", file.Filename)
		savedPath, err := utility.SaveUploadedFile(file, destDir, storedName)
		if err != nil {
			// Dọn các tệp đã ghi của lần nộp dở dang
			for _, p := range savedPaths {
				if rmErr := utility.RemoveFileIfExists(p); rmErr != nil {
					logger.GetErrorLogger().WithError(rmErr).WithField("path", p).Warn("Không thể dọn tệp nộp dở dang")
				}
			}
			return nil, common.NewError(common.ErrCodeFile, "Không thể lưu tệp nộp", common.StatusInternalServerError, err)
		}
		savedPaths = append(savedPaths, savedPath)
		entries = append(entries, models.SubmissionFile{
			UploadedBy:     employeeID,
			UploadedByRole: authmodels.RoleEmployee,
			FileName:       file.Filename,
			FilePath:       savedPath,
			Note:           note,
			Department:     department,
			UploadedAt:     now,
			SelfValidated:  false,
		})
	}

	update := &basesvc.UpdateData{
		Push: map[string]interface{}{
			"submissionFiles": bson.M{"$each": entries},
			"updateLogs": models.UpdateLog{
				UpdatedBy:     employeeID,
				UpdatedByRole: authmodels.RoleEmployee,
				Note:          fmt.Sprintf("Nộp %d tệp kết quả", len(entries)),
				Timestamp:     now,
			},
		},
	}

	updated, err := s.Tasks.FindOneAndUpdate(ctx, bson.M{"_id": task.ID}, update, nil)
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"task_id":     task.ID.Hex(),
		"employee_id": employeeID.Hex(),
		"files":       len(entries),
	}).Info("Nhân viên nộp tệp kết quả")

	return &updated, nil
}

// ValidateSubmission bật selfValidated trên TẤT CẢ các tệp nộp của một nhân viên
// trên nhiệm vụ (chính sách bulk, không toggle từng tệp). Tự xác nhận là thao tác
// trên tệp của CHÍNH MÌNH: callerID khác employeeID → 403. Trả 404 khi nhân viên
// chưa nộp tệp nào.
func (s *TaskService) ValidateSubmission(ctx context.Context, taskID primitive.ObjectID, employeeID primitive.ObjectID, callerID primitive.ObjectID) (*models.Task, error) {
	if callerID != employeeID {
		return nil, common.ErrForbidden
	}

	task, err := s.Tasks.FindOneById(ctx, taskID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if len(task.SubmissionsBy(employeeID)) == 0 {
		return nil, common.ErrNoSubmission
	}

	// arrayFilters đánh dấu mọi phần tử có uploadedBy khớp trong một update
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"submissionFiles.$[f].selfValidated": true,
		},
		Push: map[string]interface{}{
			"updateLogs": models.UpdateLog{
				UpdatedBy:     employeeID,
				UpdatedByRole: authmodels.RoleEmployee,
				Note:          "Tự xác nhận các tệp đã nộp",
				Timestamp:     utility.CurrentTimeInMilli(),
			},
		},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"f.uploadedBy": employeeID}},
		})

	updated, err := s.Tasks.FindOneAndUpdate(ctx, bson.M{"_id": task.ID}, update, opts)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSubmission rút lại toàn bộ tệp nộp của một nhân viên: $pull mọi mục
// submissionFiles của nhân viên đó rồi xóa tệp trên đĩa (best-effort, tệp
// thiếu không làm hỏng thao tác). Nhân viên chỉ rút được tệp của CHÍNH MÌNH:
// callerID khác employeeID → 403. Trạng thái nhiệm vụ KHÔNG lùi lại sau khi
// rút; nhân viên có thể nộp lại sau.
func (s *TaskService) DeleteSubmission(ctx context.Context, taskID primitive.ObjectID, employeeID primitive.ObjectID, callerID primitive.ObjectID) (*models.Task, error) {
	if callerID != employeeID {
		return nil, common.ErrForbidden
	}

	task, err := s.Tasks.FindOneById(ctx, taskID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	removed := task.SubmissionsBy(employeeID)
	if len(removed) == 0 {
		return nil, common.ErrNoSubmission
	}

	update := &basesvc.UpdateData{
		Pull: map[string]interface{}{
			"submissionFiles": bson.M{"uploadedBy": employeeID},
		},
		Push: map[string]interface{}{
			"updateLogs": models.UpdateLog{
				UpdatedBy:     employeeID,
				UpdatedByRole: authmodels.RoleEmployee,
				Note:          fmt.Sprintf("Rút lại %d tệp đã nộp", len(removed)),
				Timestamp:     utility.CurrentTimeInMilli(),
			},
		},
	}

	updated, err := s.Tasks.FindOneAndUpdate(ctx, bson.M{"_id": task.ID}, update, nil)
	if err != nil {
		return nil, err
	}

	for _, f := range removed {
		if err := utility.RemoveFileIfExists(f.FilePath); err != nil {
			logger.GetErrorLogger().WithError(err).WithFields(logrus.Fields{
				"task_id": task.ID.Hex(),
				"path":    f.FilePath,
			}).Warn("Không thể xóa tệp nộp trên đĩa")
		}
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"task_id":     task.ID.Hex(),
		"employee_id": employeeID.Hex(),
		"files":       len(removed),
	}).Info("Nhân viên rút lại tệp nộp")

	return &updated, nil
}
