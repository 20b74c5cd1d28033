package metrics

import (
	"errors"
	"testing"

	"Memora/pkg/response"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	before := testutil.ToFloat64(interactionsTotal.WithLabelValues("like", "conflict"))
	Observe("like", response.Conflict("memory already liked"))
	assert.Equal(t, before+1, testutil.ToFloat64(interactionsTotal.WithLabelValues("like", "conflict")))

	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "storage_failure", Outcome(errors.New("db down")))
	assert.Equal(t, "not_found", Outcome(response.NotFound("x")))
}
