package position

import (
	"errors"
	"strings"

	positionerrors "go-workforce/internal/position/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_position_name":
			return positionerrors.ErrPositionNameTaken
		case pgErr.Code == "23503":
			return positionerrors.ErrPositionInUse
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_position_name") {
		return positionerrors.ErrPositionNameTaken
	}

	return err
}
