package middleware

import (
	autherrors "go-workforce/internal/auth/errors"
	"go-workforce/internal/domain"
	"go-workforce/internal/shared/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface so this middleware does not depend on
// the rbac package directly.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		if employeeID == "" {
			abortWith(c, autherrors.ErrMissingToken)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			Resource:   resource,
			Action:     action,
		})
		if err != nil {
			abortWith(c, apperror.New(apperror.CodeInternalError, "Authorization check failed", http.StatusInternalServerError))
			return
		}

		if !allowed {
			abortWith(c, autherrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
