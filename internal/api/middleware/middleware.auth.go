package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "task_manager/internal/api/auth/models"
	authsvc "task_manager/internal/api/auth/service"
	"task_manager/internal/common"
	"task_manager/internal/global"
	"task_manager/internal/logger"
	"task_manager/internal/utility"
)

// AuthManager giữ service tra cứu principal cho middleware xác thực.
// Cache giảm số lần tra cứu MongoDB khi cùng một tài khoản gọi API liên tục.
type AuthManager struct {
	AuthSvc *authsvc.AuthService
	Cache   *utility.Cache
}

// cachedPrincipal là entry lưu trong cache principal
type cachedPrincipal struct {
	Principal  interface{}
	Department string
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authSvc, err := authsvc.NewAuthService()
		if err != nil {
			panic(err)
		}
		authManagerInstance = &AuthManager{
			AuthSvc: authSvc,
			Cache:   utility.NewCache(30*time.Second, 30*time.Second),
		}
	})
	return authManagerInstance
}

// InvalidatePrincipal xóa principal khỏi cache sau khi tài khoản bị cập nhật,
// để request kế tiếp đọc lại bản ghi mới từ MongoDB.
func (am *AuthManager) InvalidatePrincipal(role string, id primitive.ObjectID) {
	am.Cache.Delete(role + ":" + id.Hex())
}

// resolvePrincipal tra cứu tài khoản trong đúng một collection theo role claim.
// Trả về document tài khoản và department hiện tại (rỗng với SuperAdmin).
func (am *AuthManager) resolvePrincipal(ctx context.Context, role string, id primitive.ObjectID) (interface{}, string, error) {
	cacheKey := role + ":" + id.Hex()
	if cached, ok := am.Cache.Get(cacheKey); ok {
		if entry, ok := cached.(cachedPrincipal); ok {
			return entry.Principal, entry.Department, nil
		}
	}

	principal, department, err := am.lookupPrincipal(ctx, role, id)
	if err != nil {
		return nil, "", err
	}

	am.Cache.Set(cacheKey, cachedPrincipal{Principal: principal, Department: department})
	return principal, department, nil
}

// lookupPrincipal truy vấn MongoDB theo role claim
func (am *AuthManager) lookupPrincipal(ctx context.Context, role string, id primitive.ObjectID) (interface{}, string, error) {
	switch role {
	case models.RoleSuperAdmin:
		superAdmin, err := am.AuthSvc.SuperAdmins.FindOneById(ctx, id)
		if err != nil {
			return nil, "", common.ErrTokenInvalid
		}
		return superAdmin, "", nil
	case models.RoleAdmin:
		admin, err := am.AuthSvc.Admins.FindOneById(ctx, id)
		if err != nil {
			return nil, "", common.ErrTokenInvalid
		}
		return admin, admin.Department, nil
	case models.RoleEmployee:
		employee, err := am.AuthSvc.Employees.FindOneById(ctx, id)
		if err != nil {
			return nil, "", common.ErrTokenInvalid
		}
		return employee, employee.Department, nil
	default:
		return nil, "", common.ErrTokenInvalid
	}
}

// AuthMiddleware middleware xác thực cho Fiber.
// Token hợp lệ nhưng role không nằm trong requiredRoles trả về 403;
// thiếu token hoặc token không hợp lệ trả về 401.
// Gọi không có requiredRoles nghĩa là chỉ cần đăng nhập.
func AuthMiddleware(requiredRoles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authManager := GetAuthManager()

		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := utility.ParseToken(global.ServerConfig.JwtSecret, parts[1])
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Role claim chọn đúng một collection để tra cứu principal
		principal, department, err := authManager.resolvePrincipal(c.Context(), claims.Role, userID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
				"role": claims.Role,
			}).Warn("[AUTH] Không tìm thấy tài khoản cho token")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin principal vào context
		c.Locals("user", principal)
		c.Locals("user_id", userID)
		c.Locals("role", claims.Role)
		c.Locals("department", department)

		// Kiểm tra role nếu route yêu cầu
		if len(requiredRoles) > 0 && !utility.Contains(requiredRoles, claims.Role) {
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}

		return c.Next()
	}
}
