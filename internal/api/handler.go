package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperror"
)

// bindJSON decodes the request body into obj. An empty body leaves obj
// untouched. A field of the wrong JSON type is an invalid parameter; any
// other decoding failure is a bad request. It reports whether the handler
// may continue.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		_ = c.Error(apperror.ErrInvalidParameter)
	} else {
		_ = c.Error(apperror.ErrBadRequest)
	}
	return false
}

// firstValues flattens a query string, keeping the first value of each key
func firstValues(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for key, v := range values {
		if len(v) > 0 {
			out[key] = v[0]
		}
	}
	return out
}
