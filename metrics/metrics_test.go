package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/categories", "200"))

	RecordHTTPRequest("GET", "/categories", 200, 3*time.Millisecond)
	RecordHTTPRequest("GET", "/categories", 200, 4*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/categories", "200"))
	assert.Equal(t, before+2, after)
}

func TestRecordOrderPlaced(t *testing.T) {
	before := testutil.ToFloat64(OrdersPlaced)
	RecordOrderPlaced(12400)
	assert.Equal(t, before+1, testutil.ToFloat64(OrdersPlaced))
}

func TestRecordOrderFailure(t *testing.T) {
	before := testutil.ToFloat64(OrderFailures.WithLabelValues(ReasonNotFound))
	RecordOrderFailure(ReasonNotFound)
	assert.Equal(t, before+1, testutil.ToFloat64(OrderFailures.WithLabelValues(ReasonNotFound)))
	assert.Equal(t, 0.0, testutil.ToFloat64(OrderFailures.WithLabelValues("never_used")))
}
