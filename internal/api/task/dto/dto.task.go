// Package dto - DTO cho domain task (dự án, nhiệm vụ, phân công, nộp tệp).
package dto

// CreateProjectInput dữ liệu tạo dự án mới.
type CreateProjectInput struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// DepartmentDeadlineInput một slot deadline theo phòng ban khi tạo nhiệm vụ.
type DepartmentDeadlineInput struct {
	Department string `json:"department" validate:"required,oneof=application design production store quality purchase maintenance services"`
	Deadline   int64  `json:"deadline" validate:"required,gt=0"`
}

// CreateTaskInput dữ liệu tạo nhiệm vụ mới. Project phải là id của một dự án
// đã tồn tại (tag exists kiểm tra trực tiếp trên collection projects).
type CreateTaskInput struct {
	Title               string                    `json:"title" validate:"required,min=2,max=200"`
	Description         string                    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Priority            string                    `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
	Project             string                    `json:"project" validate:"required,object_id,exists=projects"`
	CurrentDepartment   string                    `json:"currentDepartment" validate:"required,oneof=application design production store quality purchase maintenance services"`
	NextDepartment      string                    `json:"nextDepartment,omitempty" validate:"omitempty,oneof=application design production store quality purchase maintenance services"`
	Deadline            int64                     `json:"deadline,omitempty" validate:"omitempty,gt=0"`
	DepartmentDeadlines []DepartmentDeadlineInput `json:"departmentDeadlines,omitempty" validate:"omitempty,dive"`
}

// AssignTaskInput danh sách id người nhận khi phân công nhiệm vụ.
// SuperAdmin gọi: phần tử đầu là id của Admin nhận nhiệm vụ.
// Admin gọi: danh sách id các Employee.
type AssignTaskInput struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,object_id"`
}

// SubmitTaskInput phần body đi kèm các tệp trong multipart khi nhân viên nộp.
type SubmitTaskInput struct {
	Note       string `json:"note,omitempty" form:"note" validate:"omitempty,max=2000"`
	Department string `json:"department" form:"department" validate:"required,oneof=application design production store quality purchase maintenance services"`
}

// UpdateTaskStatusInput chuyển trạng thái nhiệm vụ sang Completed hoặc Rejected.
type UpdateTaskStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Completed Rejected"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=2000"`
}
