package rbac

import (
	"context"
	"strings"
	"sync"

	"go-workforce/internal/domain"
	rbacerrors "go-workforce/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrRoleAlreadyAssigned is re-exported so callers outside this package can
// match it without importing the errors subpackage.
var ErrRoleAlreadyAssigned = rbacerrors.ErrRoleAlreadyAssigned

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)

	ListRoles(ctx context.Context) ([]RoleResponse, error)
	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error

	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
	CreatePermission(ctx context.Context, req CreatePermissionRequest) (PermissionResponse, error)
	DeletePermission(ctx context.Context, id string) error

	GetRolePermissions(ctx context.Context, roleID string) ([]PermissionResponse, error)
	SetRolePermissions(ctx context.Context, roleID string, permIDs []string) error

	AssignRole(ctx context.Context, employeeID, roleID string) error
	AssignRoleByName(ctx context.Context, employeeID, roleName string) error
	RevokeRole(ctx context.Context, employeeID, roleID string) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{repo: repo, enforcer: enforcer, logger: l}
}

// Enforce reloads policy from the database and evaluates the request. The
// reload keeps the enforcer consistent with role changes made by other
// instances, at the cost of two small queries per check.
func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()

	if err := s.loadPolicyUnlocked(ctx); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	s.enforcer.ClearPolicy()

	employeeRoles, err := s.repo.GetEmployeeRoles(ctx)
	if err != nil {
		return err
	}
	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		resource, action, ok := splitPermissionName(rp.PermissionName)
		if !ok {
			s.logger.Warn("skipping malformed permission name",
				zap.String("permission", rp.PermissionName),
			)
			continue
		}
		if _, err := s.enforcer.AddPolicy(rp.RoleID, resource, action); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]RoleResponse, len(roles))
	for i, role := range roles {
		resp[i] = mapRoleToResponse(role)
	}
	return resp, nil
}

func (s *service) CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	role := &Role{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateRole(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	return mapRoleToResponse(*role), nil
}

func (s *service) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = req.Description
	}

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	return mapRoleToResponse(*role), nil
}

func (s *service) DeleteRole(ctx context.Context, id string) error {
	return mapRepositoryError(s.repo.DeleteRole(ctx, id))
}

func (s *service) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PermissionResponse, len(perms))
	for i, perm := range perms {
		resp[i] = mapPermissionToResponse(perm)
	}
	return resp, nil
}

func (s *service) CreatePermission(ctx context.Context, req CreatePermissionRequest) (PermissionResponse, error) {
	if _, _, ok := splitPermissionName(req.Name); !ok {
		return PermissionResponse{}, rbacerrors.ErrInvalidPermissionName
	}

	perm := &Permission{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreatePermission(ctx, perm); err != nil {
		return PermissionResponse{}, mapRepositoryError(err)
	}
	return mapPermissionToResponse(*perm), nil
}

func (s *service) DeletePermission(ctx context.Context, id string) error {
	return mapRepositoryError(s.repo.DeletePermission(ctx, id))
}

func (s *service) GetRolePermissions(ctx context.Context, roleID string) ([]PermissionResponse, error) {
	if _, err := s.repo.GetRoleByID(ctx, roleID); err != nil {
		return nil, mapRepositoryError(err)
	}

	perms, err := s.repo.GetPermissionsByRoleID(ctx, roleID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PermissionResponse, len(perms))
	for i, perm := range perms {
		resp[i] = mapPermissionToResponse(perm)
	}
	return resp, nil
}

func (s *service) SetRolePermissions(ctx context.Context, roleID string, permIDs []string) error {
	if _, err := s.repo.GetRoleByID(ctx, roleID); err != nil {
		return mapRepositoryError(err)
	}
	return mapRepositoryError(s.repo.SetRolePermissions(ctx, roleID, permIDs))
}

func (s *service) AssignRole(ctx context.Context, employeeID, roleID string) error {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return rbacerrors.ErrInvalidRoleID
	}
	rid, err := uuid.Parse(roleID)
	if err != nil {
		return rbacerrors.ErrInvalidRoleID
	}

	if _, err := s.repo.GetRoleByID(ctx, roleID); err != nil {
		return mapRepositoryError(err)
	}

	return mapRepositoryError(s.repo.AssignRole(ctx, eid, rid))
}

func (s *service) AssignRoleByName(ctx context.Context, employeeID, roleName string) error {
	role, err := s.repo.GetRoleByName(ctx, roleName)
	if err != nil {
		return mapRepositoryError(err)
	}

	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return rbacerrors.ErrInvalidRoleID
	}

	return mapRepositoryError(s.repo.AssignRole(ctx, eid, role.ID))
}

func (s *service) RevokeRole(ctx context.Context, employeeID, roleID string) error {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return rbacerrors.ErrInvalidRoleID
	}
	rid, err := uuid.Parse(roleID)
	if err != nil {
		return rbacerrors.ErrInvalidRoleID
	}
	return mapRepositoryError(s.repo.RevokeRole(ctx, eid, rid))
}

// splitPermissionName parses "resource:action" permission names.
func splitPermissionName(name string) (resource, action string, ok bool) {
	parts := strings.SplitN(name, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func mapRoleToResponse(role Role) RoleResponse {
	return RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Description: role.Description,
	}
}

func mapPermissionToResponse(perm Permission) PermissionResponse {
	return PermissionResponse{
		ID:          perm.ID.String(),
		Name:        perm.Name,
		Description: perm.Description,
	}
}
