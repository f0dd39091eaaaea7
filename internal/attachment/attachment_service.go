package attachment

import (
	"context"
	"errors"
	"strings"
	"time"

	attachmenterrors "go-workforce/internal/attachment/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attachment_service.go -destination=mock/attachment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, creatorID string, req CreateAttachmentRequest) (AttachmentResponse, error)
	FindByID(ctx context.Context, id string) (AttachmentResponse, error)
	FindByParent(ctx context.Context, taskID, projectID, employeeProfileID string) ([]AttachmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attachment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attachment.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateAttachmentRequest) (AttachmentResponse, error) {
	creator, err := uuid.Parse(creatorID)
	if err != nil {
		return AttachmentResponse{}, attachmenterrors.ErrInvalidAttachmentID
	}

	if req.TaskID == nil && req.ProjectID == nil && req.EmployeeProfileID == nil {
		return AttachmentResponse{}, attachmenterrors.ErrNoParent
	}

	att := &Attachment{
		ID:                uuid.New(),
		FileName:          req.FileName,
		StoragePath:       req.StoragePath,
		MimeType:          req.MimeType,
		SizeBytes:         req.SizeBytes,
		CreatorID:         creator,
		TaskID:            uuidPtr(req.TaskID),
		ProjectID:         uuidPtr(req.ProjectID),
		EmployeeProfileID: uuidPtr(req.EmployeeProfileID),
	}

	if err := s.repo.Create(ctx, att); err != nil {
		return AttachmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*att), nil
}

func (s *service) FindByID(ctx context.Context, id string) (AttachmentResponse, error) {
	att, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttachmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*att), nil
}

func (s *service) FindByParent(ctx context.Context, taskID, projectID, employeeProfileID string) ([]AttachmentResponse, error) {
	atts, err := s.repo.FindByParent(ctx, taskID, projectID, employeeProfileID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]AttachmentResponse, len(atts))
	for i, att := range atts {
		resp[i] = mapToResponse(att)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attachmenterrors.ErrAttachmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attachment_storage_path" {
		return attachmenterrors.ErrStoragePathTaken
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attachment_storage_path") {
		return attachmenterrors.ErrStoragePathTaken
	}

	return err
}

func mapToResponse(att Attachment) AttachmentResponse {
	resp := AttachmentResponse{
		ID:          att.ID.String(),
		FileName:    att.FileName,
		StoragePath: att.StoragePath,
		MimeType:    att.MimeType,
		SizeBytes:   att.SizeBytes,
		CreatorID:   att.CreatorID.String(),
		CreatedAt:   att.CreatedAt.Format(time.RFC3339),
	}
	if att.TaskID != nil {
		tid := att.TaskID.String()
		resp.TaskID = &tid
	}
	if att.ProjectID != nil {
		pid := att.ProjectID.String()
		resp.ProjectID = &pid
	}
	if att.EmployeeProfileID != nil {
		eid := att.EmployeeProfileID.String()
		resp.EmployeeProfileID = &eid
	}
	return resp
}

func uuidPtr(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}
