package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isForeignKeyConstraintViolation reports whether err is a foreign key
// violation. Relies on the TranslateError option so PostgreSQL error 23503
// surfaces as GORM's sentinel.
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
