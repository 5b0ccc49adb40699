// Package authsvc - service xác thực và quản lý tài khoản ba tier
// (SuperAdmin, Admin, Employee), mỗi tier một collection riêng.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdto "task_manager/internal/api/auth/dto"
	models "task_manager/internal/api/auth/models"
	basesvc "task_manager/internal/api/base/service"
	"task_manager/internal/common"
	"task_manager/internal/global"
	"task_manager/internal/logger"
	"task_manager/internal/utility"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// generatedPasswordLength là độ dài mật khẩu sinh ra khi cấp tài khoản.
const generatedPasswordLength = 12

// AuthService chứa các phương thức đăng ký, đăng nhập và cấp tài khoản.
type AuthService struct {
	SuperAdmins *basesvc.BaseServiceMongoImpl[models.SuperAdmin]
	Admins      *basesvc.BaseServiceMongoImpl[models.Admin]
	Employees   *basesvc.BaseServiceMongoImpl[models.Employee]
}

// NewAuthService tạo mới AuthService từ các collection đã đăng ký.
func NewAuthService() (*AuthService, error) {
	superAdminCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SuperAdmins)
	if !exist {
		return nil, fmt.Errorf("failed to get super_admins collection: %v", common.ErrNotFound)
	}
	adminCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Admins)
	if !exist {
		return nil, fmt.Errorf("failed to get admins collection: %v", common.ErrNotFound)
	}
	employeeCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}

	return &AuthService{
		SuperAdmins: basesvc.NewBaseServiceMongo[models.SuperAdmin](superAdminCol),
		Admins:      basesvc.NewBaseServiceMongo[models.Admin](adminCol),
		Employees:   basesvc.NewBaseServiceMongo[models.Employee](employeeCol),
	}, nil
}

// RegisterSuperAdmin đăng ký tài khoản SuperAdmin (bootstrap hệ thống).
func (s *AuthService) RegisterSuperAdmin(ctx context.Context, input *authdto.RegisterSuperAdminInput) (*models.SuperAdmin, error) {
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	superAdmin := models.SuperAdmin{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Phone:    input.Phone,
	}
	created, err := s.SuperAdmins.InsertOne(ctx, superAdmin)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.ErrEmailTaken
		}
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"email": created.Email,
	}).Info("Đăng ký SuperAdmin mới")

	return &created, nil
}

// issueToken tạo JWT cho principal với thời hạn theo role.
func issueToken(id primitive.ObjectID, email, role, department string) (string, error) {
	expiryHours := global.ServerConfig.JwtExpiryDefault
	if role == models.RoleSuperAdmin {
		expiryHours = global.ServerConfig.JwtExpirySuperAdmin
	}

	claims := &utility.TokenClaims{
		UserID:     id.Hex(),
		Email:      email,
		Role:       role,
		Department: department,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		},
	}
	return utility.CreateToken(global.ServerConfig.JwtSecret, claims)
}

// LoginSuperAdmin xác thực SuperAdmin bằng email/mật khẩu và cấp token.
func (s *AuthService) LoginSuperAdmin(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResult, error) {
	superAdmin, err := s.SuperAdmins.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if !utility.ComparePassword(superAdmin.Password, input.Password) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := issueToken(superAdmin.ID, superAdmin.Email, models.RoleSuperAdmin, "")
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return &authdto.LoginResult{Token: token, Role: models.RoleSuperAdmin, User: superAdmin}, nil
}

// LoginAdmin xác thực Admin phòng ban và cấp token kèm department claim.
func (s *AuthService) LoginAdmin(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResult, error) {
	admin, err := s.Admins.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if !utility.ComparePassword(admin.Password, input.Password) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := issueToken(admin.ID, admin.Email, models.RoleAdmin, admin.Department)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return &authdto.LoginResult{Token: token, Role: models.RoleAdmin, User: admin}, nil
}

// LoginEmployee xác thực Employee và cấp token kèm department claim.
func (s *AuthService) LoginEmployee(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResult, error) {
	employee, err := s.Employees.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if !utility.ComparePassword(employee.Password, input.Password) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := issueToken(employee.ID, employee.Email, models.RoleEmployee, employee.Department)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return &authdto.LoginResult{Token: token, Role: models.RoleEmployee, User: employee}, nil
}

// CreateAdmin cấp tài khoản Admin với mật khẩu sinh ngẫu nhiên,
// trả mật khẩu plaintext đúng một lần trong response.
func (s *AuthService) CreateAdmin(ctx context.Context, input *authdto.CreateAdminInput) (*authdto.ProvisionedAccount, error) {
	plainPassword, err := utility.GeneratePassword(generatedPasswordLength)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể sinh mật khẩu", common.StatusInternalServerError, err)
	}
	hashed, err := utility.HashPassword(plainPassword)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	admin := models.Admin{
		Name:       input.Name,
		Email:      input.Email,
		Password:   hashed,
		Phone:      input.Phone,
		Department: input.Department,
	}
	created, err := s.Admins.InsertOne(ctx, admin)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.ErrEmailTaken
		}
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"email":      created.Email,
		"department": created.Department,
	}).Info("Cấp tài khoản Admin mới")

	return &authdto.ProvisionedAccount{User: created, Password: plainPassword}, nil
}

// CreateEmployee cấp tài khoản Employee với mật khẩu sinh ngẫu nhiên.
func (s *AuthService) CreateEmployee(ctx context.Context, input *authdto.CreateEmployeeInput) (*authdto.ProvisionedAccount, error) {
	plainPassword, err := utility.GeneratePassword(generatedPasswordLength)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể sinh mật khẩu", common.StatusInternalServerError, err)
	}
	hashed, err := utility.HashPassword(plainPassword)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	employee := models.Employee{
		Name:          input.Name,
		Email:         input.Email,
		Password:      hashed,
		Phone:         input.Phone,
		Department:    input.Department,
		Position:      input.Position,
		DateOfJoining: input.DateOfJoining,
	}
	created, err := s.Employees.InsertOne(ctx, employee)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.ErrEmailTaken
		}
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"email":      created.Email,
		"department": created.Department,
	}).Info("Cấp tài khoản Employee mới")

	return &authdto.ProvisionedAccount{User: created, Password: plainPassword}, nil
}

// GetProfile trả về document tài khoản của principal theo role.
func (s *AuthService) GetProfile(ctx context.Context, role string, id primitive.ObjectID) (interface{}, error) {
	switch role {
	case models.RoleSuperAdmin:
		superAdmin, err := s.SuperAdmins.FindOneById(ctx, id)
		if err != nil {
			return nil, common.ErrUserNotFound
		}
		return superAdmin, nil
	case models.RoleAdmin:
		admin, err := s.Admins.FindOneById(ctx, id)
		if err != nil {
			return nil, common.ErrUserNotFound
		}
		return admin, nil
	case models.RoleEmployee:
		employee, err := s.Employees.FindOneById(ctx, id)
		if err != nil {
			return nil, common.ErrUserNotFound
		}
		return employee, nil
	default:
		return nil, common.ErrForbidden
	}
}

// UpdateProfile cập nhật các trường scalar được phép sửa và ảnh đại diện (nếu có)
// cho tài khoản của principal. photoURL rỗng nghĩa là không thay đổi ảnh.
func (s *AuthService) UpdateProfile(ctx context.Context, role string, id primitive.ObjectID, input *authdto.UpdateProfileInput, photoURL string) (interface{}, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.Position != "" && role == models.RoleEmployee {
		set["position"] = input.Position
	}
	if photoURL != "" {
		set["photoUrl"] = photoURL
	}
	if len(set) == 0 {
		return nil, common.ErrRequiredField
	}

	update := &basesvc.UpdateData{Set: set}
	filter := bson.M{"_id": id}

	switch role {
	case models.RoleSuperAdmin:
		updated, err := s.SuperAdmins.FindOneAndUpdate(ctx, filter, update, nil)
		if err != nil {
			return nil, err
		}
		return updated, nil
	case models.RoleAdmin:
		updated, err := s.Admins.FindOneAndUpdate(ctx, filter, update, nil)
		if err != nil {
			return nil, err
		}
		return updated, nil
	case models.RoleEmployee:
		updated, err := s.Employees.FindOneAndUpdate(ctx, filter, update, nil)
		if err != nil {
			return nil, err
		}
		return updated, nil
	default:
		return nil, common.ErrForbidden
	}
}
