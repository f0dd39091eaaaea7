package rbac

import (
	"errors"
	"strings"

	rbacerrors "go-workforce/internal/rbac/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rbacerrors.ErrRoleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_role_name":
			return rbacerrors.ErrRoleNameTaken
		case "uq_permission_name":
			return rbacerrors.ErrPermissionNameTaken
		case "uq_employee_role":
			return rbacerrors.ErrRoleAlreadyAssigned
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, "uq_role_name"):
			return rbacerrors.ErrRoleNameTaken
		case strings.Contains(errMsg, "uq_permission_name"):
			return rbacerrors.ErrPermissionNameTaken
		case strings.Contains(errMsg, "uq_employee_role"):
			return rbacerrors.ErrRoleAlreadyAssigned
		}
	}

	return err
}
