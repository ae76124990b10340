package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

func isPQError(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
