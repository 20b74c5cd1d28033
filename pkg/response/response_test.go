package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	cause := errors.New("Error 1146 (42S02): Table 'memora.follows' doesn't exist")

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", NotFound("user not found"), http.StatusNotFound, "user not found"},
		{"conflict", Conflict("already following"), http.StatusBadRequest, "already following"},
		{"validation", Validation("content is required"), http.StatusBadRequest, "content is required"},
		{"storage", Storage(cause), http.StatusInternalServerError, "storage failure"},
		{"plain", cause, http.StatusInternalServerError, "storage failure"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := FromError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.False(t, env.Success)
			assert.Equal(t, tc.message, env.Message)
			assert.NotContains(t, env.Message, "1146")
		})
	}
}
