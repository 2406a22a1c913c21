package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsDuplicateKey reports whether err is a store uniqueness (or exclusion)
// violation. gorm translates driver errors when TranslateError is on; the
// raw pgconn codes are checked as well for paths that bypass translation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 unique_violation, 23P01 exclusion_violation
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
