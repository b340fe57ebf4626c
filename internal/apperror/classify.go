package apperror

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes understood by Classify.
const (
	codeInvalidTextRepresentation = pq.ErrorCode("22P02")
	codeNumericValueOutOfRange    = pq.ErrorCode("22003")
	codeNotNullViolation          = pq.ErrorCode("23502")
	codeForeignKeyViolation       = pq.ErrorCode("23503")
	codeUniqueViolation           = pq.ErrorCode("23505")
)

var storeCodes = map[pq.ErrorCode]*Rejection{
	codeInvalidTextRepresentation: ErrInvalidParameter,
	codeNumericValueOutOfRange:    ErrInvalidParameter,
	codeNotNullViolation:          ErrBadRequest,
	codeForeignKeyViolation:       ErrBadRequest,
	codeUniqueViolation:           ErrBadRequest,
}

// Classify maps err to the rejection the client should see. Rejections
// already in the chain pass through unchanged; *pq.Error values are looked
// up by SQLSTATE code. ok is false for anything else, leaving the decision
// to the caller.
func Classify(err error) (rej *Rejection, ok bool) {
	if err == nil {
		return nil, false
	}

	if errors.As(err, &rej) {
		return rej, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if rej, ok := storeCodes[pqErr.Code]; ok {
			return rej, true
		}
	}

	return nil, false
}
