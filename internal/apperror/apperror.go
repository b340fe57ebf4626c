// Package apperror defines the closed set of rejections the API can return
// and the classifier that turns store failures into them.
//
// Repositories and services return one of the Err* values (optionally
// wrapped with fmt.Errorf and %w). Handlers never inspect errors; the HTTP
// layer calls Classify once, at the boundary.
package apperror

import (
	"errors"
	"net/http"
)

// Rejection is an expected failure carrying the HTTP status and the
// message sent to the client.
type Rejection struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

func (r *Rejection) Error() string { return r.Msg }

var (
	// ErrNotFound is returned for well-formed identifiers with no matching row.
	ErrNotFound = &Rejection{Status: http.StatusNotFound, Msg: "ID does'nt exist"}

	// ErrInvalidParameter is returned when an identifier or body field has the
	// wrong shape or type.
	ErrInvalidParameter = &Rejection{Status: http.StatusBadRequest, Msg: "Invalid parameter"}

	// ErrBadRequest is returned for missing required fields, unknown query
	// parameters and referential integrity violations.
	ErrBadRequest = &Rejection{Status: http.StatusBadRequest, Msg: "Bad request"}
)

// ErrInternal is the body written for failures Classify does not recognise.
var ErrInternal = &Rejection{Status: http.StatusInternalServerError, Msg: "Internal server error"}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
