package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// isUniqueViolation detecta la violación de constraint único (23505), que los
// catálogos traducen a ErrDuplicate.
func isUniqueViolation(err error) bool {
	return pgErrCode(err, "23505")
}

// isForeignKeyViolation detecta la violación de clave foránea (23503): el
// alta o edición apuntó a un id de referencia inexistente.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err, "23503")
}
