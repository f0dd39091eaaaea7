package database

import (
	"fmt"

	"go-workforce/internal/attachment"
	"go-workforce/internal/department"
	"go-workforce/internal/employee"
	"go-workforce/internal/hourlog"
	"go-workforce/internal/position"
	"go-workforce/internal/project"
	"go-workforce/internal/rbac"
	"go-workforce/internal/task"

	"gorm.io/gorm"
)

// Enum types must exist before AutoMigrate references them in column types.
var enumStatements = []string{
	`DO $$ BEGIN
		CREATE TYPE project_status AS ENUM (
			'active', 'completed', 'pending', 'cancelled', 'archived', 'reopened',
			'waiting_for_review', 'waiting_for_approval', 'waiting_for_feedback',
			'waiting_for_resources', 'waiting_for_dependencies'
		);
	EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	`DO $$ BEGIN
		CREATE TYPE task_status AS ENUM (
			'pending', 'in_progress', 'in_review', 'completed', 'on_hold',
			'cancelled', 'archived', 'deleted', 'reopened',
			'waiting_for_review', 'waiting_for_approval', 'waiting_for_feedback',
			'waiting_for_resources', 'waiting_for_dependencies'
		);
	EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	`DO $$ BEGIN
		CREATE TYPE task_priority AS ENUM ('low', 'medium', 'high', 'urgent', 'critical');
	EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	`DO $$ BEGIN
		CREATE TYPE approval_status AS ENUM ('pending', 'approved', 'rejected');
	EXCEPTION WHEN duplicate_object THEN null; END $$;`,
}

var foreignKeyStatements = []string{
	`ALTER TABLE employees ADD CONSTRAINT fk_employees_position
		FOREIGN KEY (position_id) REFERENCES positions(id)`,
	`ALTER TABLE employees ADD CONSTRAINT fk_employees_department
		FOREIGN KEY (department_id) REFERENCES departments(id)`,
	`ALTER TABLE employees ADD CONSTRAINT fk_employees_supervisor
		FOREIGN KEY (supervisor_id) REFERENCES employees(id)`,
	`ALTER TABLE departments ADD CONSTRAINT fk_departments_manager
		FOREIGN KEY (manager_id) REFERENCES employees(id)`,
	`ALTER TABLE projects ADD CONSTRAINT fk_projects_manager
		FOREIGN KEY (manager_id) REFERENCES employees(id)`,
	`ALTER TABLE tasks ADD CONSTRAINT fk_tasks_project
		FOREIGN KEY (project_id) REFERENCES projects(id)`,
	`ALTER TABLE tasks ADD CONSTRAINT fk_tasks_creator
		FOREIGN KEY (creator_id) REFERENCES employees(id)`,
	`ALTER TABLE employee_tasks ADD CONSTRAINT fk_employee_tasks_employee
		FOREIGN KEY (employee_id) REFERENCES employees(id)`,
	`ALTER TABLE employee_tasks ADD CONSTRAINT fk_employee_tasks_task
		FOREIGN KEY (task_id) REFERENCES tasks(id)`,
	`ALTER TABLE hour_logs ADD CONSTRAINT fk_hour_logs_task
		FOREIGN KEY (task_id) REFERENCES tasks(id)`,
	`ALTER TABLE hour_logs ADD CONSTRAINT fk_hour_logs_employee
		FOREIGN KEY (employee_id) REFERENCES employees(id)`,
	`ALTER TABLE hour_logs ADD CONSTRAINT fk_hour_logs_approver
		FOREIGN KEY (approver_id) REFERENCES employees(id)`,
	`ALTER TABLE attachments ADD CONSTRAINT fk_attachments_creator
		FOREIGN KEY (creator_id) REFERENCES employees(id)`,
	`ALTER TABLE attachments ADD CONSTRAINT fk_attachments_task
		FOREIGN KEY (task_id) REFERENCES tasks(id)`,
	`ALTER TABLE attachments ADD CONSTRAINT fk_attachments_project
		FOREIGN KEY (project_id) REFERENCES projects(id)`,
	`ALTER TABLE attachments ADD CONSTRAINT fk_attachments_employee_profile
		FOREIGN KEY (employee_profile_id) REFERENCES employees(id)`,
	`ALTER TABLE employee_roles ADD CONSTRAINT fk_employee_roles_employee
		FOREIGN KEY (employee_id) REFERENCES employees(id)`,
	`ALTER TABLE employee_roles ADD CONSTRAINT fk_employee_roles_role
		FOREIGN KEY (role_id) REFERENCES roles(id)`,
	`ALTER TABLE role_permissions ADD CONSTRAINT fk_role_permissions_role
		FOREIGN KEY (role_id) REFERENCES roles(id)`,
	`ALTER TABLE role_permissions ADD CONSTRAINT fk_role_permissions_permission
		FOREIGN KEY (permission_id) REFERENCES permissions(id)`,
}

const outboxTableStatement = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id uuid PRIMARY KEY,
	request_id text,
	aggregate_type text NOT NULL,
	aggregate_id uuid NOT NULL,
	event_type text NOT NULL,
	topic text NOT NULL,
	payload jsonb NOT NULL,
	status text NOT NULL DEFAULT 'pending',
	retry_count int NOT NULL DEFAULT 0,
	error_message text,
	next_retry_at timestamptz,
	processed_at timestamptz,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
)`

// Migrate creates the relational schema: enum types, the twelve domain
// tables, their foreign keys, and the outbox table. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	for _, stmt := range enumStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create enum type: %w", err)
		}
	}

	err := db.AutoMigrate(
		&position.Position{},
		&department.Department{},
		&employee.Employee{},
		&project.Project{},
		&task.Task{},
		&task.EmployeeTask{},
		&hourlog.HourLog{},
		&attachment.Attachment{},
		&rbac.Role{},
		&rbac.Permission{},
		&rbac.EmployeeRole{},
		&rbac.RolePermission{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range foreignKeyStatements {
		if err := db.Exec(stmt).Error; err != nil {
			// Re-running against an existing schema hits duplicate constraints.
			continue
		}
	}

	if err := db.Exec(outboxTableStatement).Error; err != nil {
		return fmt.Errorf("create outbox table: %w", err)
	}

	return nil
}
