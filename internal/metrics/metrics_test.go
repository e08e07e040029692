package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHTTP_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTP(reg)

	m.Observe("GET", "/api/quizzes", 200, 10*time.Millisecond)
	m.Observe("GET", "/api/quizzes", 200, 20*time.Millisecond)
	m.Observe("POST", "/api/quizzes", 409, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/quizzes", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/quizzes", "409")))
	require.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestNewHTTP_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewHTTP(reg)

	require.Panics(t, func() { NewHTTP(reg) })
}
