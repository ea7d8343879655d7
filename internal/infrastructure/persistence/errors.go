package persistence

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"gorm.io/gorm"
)

// duplicateKeyErrorCode is the PostgreSQL unique_violation code
const duplicateKeyErrorCode = "23505"

// wrapError translates driver errors into records sentinels and adds op as context.
func wrapError(op string, err error) error {
	var pgErr *pgconn.PgError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, records.ErrNotFound), errors.Is(err, records.ErrInvalid), errors.Is(err, records.ErrConflict):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, records.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: duplicate key: %w", op, records.ErrConflict)
	case errors.As(err, &pgErr) && pgErr.Code == duplicateKeyErrorCode:
		return fmt.Errorf("%s: %s: %w", op, pgErr.Message, records.ErrConflict)
	}

	return fmt.Errorf("%s: %w", op, err)
}
