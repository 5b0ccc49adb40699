// Package tasksvc - service dự án và nhiệm vụ.
package tasksvc

import (
	"context"
	"fmt"

	authmodels "task_manager/internal/api/auth/models"
	basemodels "task_manager/internal/api/base/models"
	basesvc "task_manager/internal/api/base/service"
	taskdto "task_manager/internal/api/task/dto"
	models "task_manager/internal/api/task/models"
	"task_manager/internal/common"
	"task_manager/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskService chứa logic dự án, nhiệm vụ, phân công và nộp tệp.
// Giữ thêm service Admin/Employee để đối chiếu người nhận khi phân công.
type TaskService struct {
	Projects  *basesvc.BaseServiceMongoImpl[models.Project]
	Tasks     *basesvc.BaseServiceMongoImpl[models.Task]
	Admins    *basesvc.BaseServiceMongoImpl[authmodels.Admin]
	Employees *basesvc.BaseServiceMongoImpl[authmodels.Employee]
}

// NewTaskService tạo mới TaskService từ các collection đã đăng ký.
func NewTaskService() (*TaskService, error) {
	projectCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Projects)
	if !exist {
		return nil, fmt.Errorf("failed to get projects collection: %v", common.ErrNotFound)
	}
	taskCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tasks)
	if !exist {
		return nil, fmt.Errorf("failed to get tasks collection: %v", common.ErrNotFound)
	}
	adminCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Admins)
	if !exist {
		return nil, fmt.Errorf("failed to get admins collection: %v", common.ErrNotFound)
	}
	employeeCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}

	return &TaskService{
		Projects:  basesvc.NewBaseServiceMongo[models.Project](projectCol),
		Tasks:     basesvc.NewBaseServiceMongo[models.Task](taskCol),
		Admins:    basesvc.NewBaseServiceMongo[authmodels.Admin](adminCol),
		Employees: basesvc.NewBaseServiceMongo[authmodels.Employee](employeeCol),
	}, nil
}

// CreateProject tạo dự án mới. Tên dự án là duy nhất.
func (s *TaskService) CreateProject(ctx context.Context, input *taskdto.CreateProjectInput, creator models.PrincipalRef) (*models.Project, error) {
	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   creator,
	}
	created, err := s.Projects.InsertOne(ctx, project)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListProjects trả về tất cả dự án, mới tạo trước.
func (s *TaskService) ListProjects(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Projects.Find(ctx, bson.M{}, opts)
}

// ListProjectsPaginated trả về dự án theo trang, mới tạo trước.
func (s *TaskService) ListProjectsPaginated(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[models.Project], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Projects.FindWithPagination(ctx, bson.M{}, page, limit, opts)
}
