package app

import (
	"database/sql"

	"go-workforce/internal/attachment"
	"go-workforce/internal/auth"
	"go-workforce/internal/department"
	"go-workforce/internal/employee"
	"go-workforce/internal/hourlog"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/position"
	"go-workforce/internal/project"
	"go-workforce/internal/rbac"
	"go-workforce/internal/rbac/infra"
	"go-workforce/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	attachmentRepo := attachment.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	hourLogRepo := hourlog.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	positionRepo := position.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)

	// --- RBAC core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	attachmentService := attachment.NewService(attachmentRepo)
	authService := auth.NewService(employeeRepo)
	departmentService := department.NewService(db, departmentRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	hourLogService := hourlog.NewService(db, hourLogRepo, outboxRepo)
	positionService := position.NewService(db, positionRepo, rdb)
	projectService := project.NewService(db, projectRepo)
	taskService := task.NewService(db, taskRepo)

	// --- Handlers ---
	attachmentHandler := attachment.NewHandler(attachmentService)
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	hourLogHandler := hourlog.NewHandler(hourLogService)
	positionHandler := position.NewHandler(positionService)
	projectHandler := project.NewHandler(projectService)
	rbacHandler := rbac.NewHandler(rbacService)
	taskHandler := task.NewHandler(taskService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		attachment.RegisterRoutes(api, attachmentHandler, rbacService, logger)
		auth.RegisterRoutes(api, authHandler, logger)
		department.RegisterRoutes(api, departmentHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rdb, logger)
		hourlog.RegisterRoutes(api, hourLogHandler, rbacService, logger)
		position.RegisterRoutes(api, positionHandler, rbacService, logger)
		project.RegisterRoutes(api, projectHandler, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, logger)
		task.RegisterRoutes(api, taskHandler, rbacService, logger)
	}

	return nil
}
