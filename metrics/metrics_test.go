package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rx "github.com/tashoecraft/rx-go"
	"github.com/tashoecraft/rx-go/metrics"
)

// scrape fetches the exposition output through the package's own handler.
func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestNew_PrivateRegistryStartsEmpty(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	assert.Empty(t, strings.TrimSpace(scrape(t, m)))
}

func TestWithRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(metrics.WithRegistry(reg))
	require.Same(t, reg, m.Registry())
}

func TestWithGoCollectors(t *testing.T) {
	t.Parallel()

	m := metrics.New(metrics.WithGoCollectors())
	assert.Contains(t, scrape(t, m), "go_goroutines")
}

func TestWithNamespace(t *testing.T) {
	t.Parallel()

	m := metrics.New(metrics.WithNamespace("app"))
	subject := rx.NewSubject[int]()
	require.NoError(t, metrics.Instrument[int](m, "jobs", subject))

	subject.Next(7)

	body := scrape(t, m)
	assert.Contains(t, body, `app_subject_deliveries_total{subject="jobs"} 1`)
	assert.Contains(t, body, `app_subject_subscribers{subject="jobs"} 1`)
	assert.NotContains(t, body, "rx_subject_deliveries_total")
}

func TestTrackSubscribers(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	subject := rx.NewSubject[int]()
	first := subject.SubscribeFunc(func(int) {})
	subject.SubscribeFunc(func(int) {})

	require.NoError(t, m.TrackSubscribers("orders", subject.Len))
	assert.Contains(t, scrape(t, m), `rx_subject_subscribers{subject="orders"} 2`)

	first.Unsubscribe()
	assert.Contains(t, scrape(t, m), `rx_subject_subscribers{subject="orders"} 1`)
}

func TestTrackSubscribers_Validation(t *testing.T) {
	t.Parallel()

	m := metrics.New()

	require.ErrorIs(t, m.TrackSubscribers("", func() int { return 0 }), metrics.ErrEmptySubjectName)
	require.ErrorIs(t, m.TrackSubscribers("orders", nil), metrics.ErrNilCountFunc)

	require.NoError(t, m.TrackSubscribers("orders", func() int { return 0 }))
	require.ErrorIs(t, m.TrackSubscribers("orders", func() int { return 0 }), metrics.ErrAlreadyTracked)
}

func TestCounted(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	src := rx.NewSubject[int]()

	var got []int
	counted := metrics.Counted[int](m, "ints", src)
	counted.Subscribe(rx.ObserverFunc[int](func(v int) { got = append(got, v) }))

	src.Next(1).Next(2)

	assert.Equal(t, []int{1, 2}, got)
	assert.Contains(t, scrape(t, m), `rx_subject_deliveries_total{subject="ints"} 2`)
}

func TestCounted_RegistersChildImmediately(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	metrics.Counted[int](m, "idle", rx.NewSubject[int]())

	// The labelled series exists at zero before any value flows.
	assert.Contains(t, scrape(t, m), `rx_subject_deliveries_total{subject="idle"} 0`)
}

func TestInstrument(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	subject := rx.NewSubject[string]()
	subject.SubscribeFunc(func(string) {})

	require.NoError(t, metrics.Instrument[string](m, "words", subject))

	subject.Next("a").Next("b").Next("c")

	body := scrape(t, m)
	assert.Contains(t, body, `rx_subject_deliveries_total{subject="words"} 3`)
	// The counting registration joins the subscriber set, so the gauge
	// reads one above the application's own subscriber.
	assert.Contains(t, body, `rx_subject_subscribers{subject="words"} 2`)
}

func TestInstrument_Validation(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	require.ErrorIs(t, metrics.Instrument[int](m, "ints", nil), metrics.ErrNilSubject)

	subject := rx.NewSubject[int]()
	require.NoError(t, metrics.Instrument[int](m, "ints", subject))
	require.ErrorIs(t, metrics.Instrument[int](m, "ints", subject), metrics.ErrAlreadyTracked)
}
