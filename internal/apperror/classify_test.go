package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantOK     bool
		wantStatus int
		wantMsg    string
	}{
		{name: "nil", err: nil, wantOK: false},
		{name: "not found passes through", err: ErrNotFound, wantOK: true, wantStatus: http.StatusNotFound, wantMsg: "ID does'nt exist"},
		{name: "wrapped rejection", err: fmt.Errorf("comment 7: %w", ErrNotFound), wantOK: true, wantStatus: http.StatusNotFound, wantMsg: "ID does'nt exist"},
		{name: "invalid parameter", err: ErrInvalidParameter, wantOK: true, wantStatus: http.StatusBadRequest, wantMsg: "Invalid parameter"},
		{name: "bad request", err: ErrBadRequest, wantOK: true, wantStatus: http.StatusBadRequest, wantMsg: "Bad request"},
		{name: "invalid text representation", err: &pq.Error{Code: "22P02"}, wantOK: true, wantStatus: http.StatusBadRequest, wantMsg: "Invalid parameter"},
		{name: "numeric out of range", err: &pq.Error{Code: "22003"}, wantOK: true, wantStatus: http.StatusBadRequest, wantMsg: "Invalid parameter"},
		{name: "not null violation", err: &pq.Error{Code: "23502"}, wantOK: true, wantStatus: http.StatusBadRequest, wantMsg: "Bad request"},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, wantOK: true, wantStatus: http.StatusBadRequest, wantMsg: "Bad request"},
		{name: "wrapped unique violation", err: fmt.Errorf("insert topic: %w", &pq.Error{Code: "23505"}), wantOK: true, wantStatus: http.StatusBadRequest, wantMsg: "Bad request"},
		{name: "unknown store code", err: &pq.Error{Code: "40001"}, wantOK: false},
		{name: "plain error", err: errors.New("connection refused"), wantOK: false},
		{name: "context canceled", err: context.Canceled, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rej, ok := Classify(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("Classify() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if rej != nil {
					t.Errorf("Expected nil rejection, got %+v", rej)
				}
				return
			}
			if rej.Status != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rej.Status)
			}
			if rej.Msg != tt.wantMsg {
				t.Errorf("Expected msg %q, got %q", tt.wantMsg, rej.Msg)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("article 3: %w", ErrNotFound)) {
		t.Error("Expected wrapped ErrNotFound to be detected")
	}
	if IsNotFound(ErrBadRequest) {
		t.Error("ErrBadRequest should not be reported as not found")
	}
}
