package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDB(t *testing.T) {
	m := New(prometheus.NewRegistry(), "test")

	m.ObserveDB("donor_list", 0.01, nil)
	m.ObserveDB("donor_list", 0.02, errors.New("boom"))
	m.ObserveDB("donor_list", 0.01, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("donor_list", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("donor_list", "error")))
}

func TestObserveDB_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveDB("stock_list", 0.1, nil) })
}
