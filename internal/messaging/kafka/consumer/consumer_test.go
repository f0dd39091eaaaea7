package consumer_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka/consumer"
	"go-workforce/internal/rbac"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedReader feeds a fixed set of messages, then cancels the consumer
// context to end the loop.
type scriptedReader struct {
	msgs      []kafkago.Message
	idx       int
	cancel    context.CancelFunc
	committed []kafkago.Message
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if r.idx >= len(r.msgs) {
		r.cancel()
		return kafkago.Message{}, context.Canceled
	}
	msg := r.msgs[r.idx]
	r.idx++
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeRBACService struct {
	rbac.Service

	assignFn func(ctx context.Context, employeeID, roleName string) error
	assigned []string
}

func (f *fakeRBACService) AssignRoleByName(ctx context.Context, employeeID, roleName string) error {
	if f.assignFn != nil {
		if err := f.assignFn(ctx, employeeID, roleName); err != nil {
			return err
		}
	}
	f.assigned = append(f.assigned, employeeID+"/"+roleName)
	return nil
}

func employeeCreatedMessage(t *testing.T, employeeID string) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		EmployeeID: employeeID,
		Email:      "new.hire@example.com",
	})
	require.NoError(t, err)
	return kafkago.Message{Topic: events.EmployeeCreatedTopic, Value: payload}
}

func runConsumer(t *testing.T, reader *scriptedReader, svc rbac.Service) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	reader.cancel = cancel
	consumer.ConsumeEmployeeLifecycle(ctx, reader, svc, zap.NewNop())
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	t.Run("assigns default role and commits", func(t *testing.T) {
		employeeID := uuid.New().String()
		reader := &scriptedReader{msgs: []kafkago.Message{employeeCreatedMessage(t, employeeID)}}
		svc := &fakeRBACService{}

		runConsumer(t, reader, svc)

		require.Len(t, svc.assigned, 1)
		assert.Equal(t, employeeID+"/"+consumer.DefaultRoleName, svc.assigned[0])
		assert.Len(t, reader.committed, 1)
	})

	t.Run("duplicate assignment commits and skips", func(t *testing.T) {
		employeeID := uuid.New().String()
		reader := &scriptedReader{msgs: []kafkago.Message{employeeCreatedMessage(t, employeeID)}}
		svc := &fakeRBACService{
			assignFn: func(ctx context.Context, employeeID, roleName string) error {
				return rbac.ErrRoleAlreadyAssigned
			},
		}

		runConsumer(t, reader, svc)

		assert.Empty(t, svc.assigned)
		// Committed anyway so the message is not redelivered forever.
		assert.Len(t, reader.committed, 1)
	})

	t.Run("malformed payload commits without assigning", func(t *testing.T) {
		reader := &scriptedReader{msgs: []kafkago.Message{
			{Topic: events.EmployeeCreatedTopic, Value: []byte("{not json")},
		}}
		svc := &fakeRBACService{}

		runConsumer(t, reader, svc)

		assert.Empty(t, svc.assigned)
		assert.Len(t, reader.committed, 1)
	})

	t.Run("processes the rest of the stream after one failure", func(t *testing.T) {
		okID := uuid.New().String()
		failID := uuid.New().String()
		reader := &scriptedReader{msgs: []kafkago.Message{
			employeeCreatedMessage(t, failID),
			employeeCreatedMessage(t, okID),
		}}
		svc := &fakeRBACService{
			assignFn: func(ctx context.Context, employeeID, roleName string) error {
				if employeeID == failID {
					return context.DeadlineExceeded
				}
				return nil
			},
		}

		runConsumer(t, reader, svc)

		require.Len(t, svc.assigned, 1)
		assert.Equal(t, okID+"/"+consumer.DefaultRoleName, svc.assigned[0])
		assert.Len(t, reader.committed, 1)
	})
}
