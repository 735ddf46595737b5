package database

import (
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// IsUniqueViolation identifica violação de UNIQUE em postgres e sqlite
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(liteErr.Error(), "UNIQUE")
		}
	}

	return false
}

// IsForeignKeyViolation identifica referência inexistente em postgres e sqlite
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "foreign_key_violation"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(liteErr.Error(), "FOREIGN KEY")
		}
	}

	return false
}

// ErrOperation identifica falhas de acesso ao banco (consulta, leitura, conexão)
var ErrOperation = errors.New("database operation failed")

type operationError struct {
	cause error
}

func (e *operationError) Error() string        { return e.cause.Error() }
func (e *operationError) Unwrap() error        { return e.cause }
func (e *operationError) Is(target error) bool { return target == ErrOperation }

// WrapError anexa a mensagem e a pilha ao erro e o marca como ErrOperation
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &operationError{cause: errors.Wrap(err, message)}
}
