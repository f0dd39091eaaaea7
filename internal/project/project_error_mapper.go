package project

import (
	"errors"
	"strings"

	projecterrors "go-workforce/internal/project/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projecterrors.ErrProjectNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_project_name":
			return projecterrors.ErrProjectNameTaken
		case pgErr.Code == "23503":
			return projecterrors.ErrProjectInUse
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_project_name") {
		return projecterrors.ErrProjectNameTaken
	}

	return err
}
