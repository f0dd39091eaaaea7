package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go-workforce/internal/events"
	"go-workforce/internal/rbac"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DefaultRoleName is granted to every employee created through the API.
const DefaultRoleName = "employee"

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Malformed payloads never become parseable, commit and move on.
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		err = rbacService.AssignRoleByName(ctx, event.EmployeeID, DefaultRoleName)
		if err != nil {
			if isDuplicateAssignment(err) {
				log.Warn("employee already holds default role, skipping",
					zap.String("employee_id", event.EmployeeID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("assign default role failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("default role assigned from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("role", DefaultRoleName),
		)
	}
}

func isDuplicateAssignment(err error) bool {
	if errors.Is(err, rbac.ErrRoleAlreadyAssigned) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_role"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_role")
}
