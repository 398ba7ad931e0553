package repository

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"gearbase/shared/failure"
)

func TestInsertFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "unique violation on slug maps to conflict",
			err:      &pq.Error{Code: "23505"},
			wantCode: http.StatusConflict,
		},
		{
			name:     "wrapped unique violation still maps to conflict",
			err:      fmt.Errorf("exec: %w", &pq.Error{Code: "23505"}),
			wantCode: http.StatusConflict,
		},
		{
			name:     "other pq error stays an internal error",
			err:      &pq.Error{Code: "23503"},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "plain error stays an internal error",
			err:      assert.AnError,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := insertFailure(tt.err)

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
