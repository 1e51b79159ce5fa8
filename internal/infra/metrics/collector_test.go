package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findMetric returns the metric in family name whose labels include want.
func findMetric(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) *dto.Metric {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m, want) {
				return m
			}
		}
	}
	t.Fatalf("metric %s%v not found", name, want)

	return nil
}

func labelsMatch(m *dto.Metric, want map[string]string) bool {
	matched := 0
	for _, lp := range m.GetLabel() {
		if v, ok := want[lp.GetName()]; ok && v == lp.GetValue() {
			matched++
		}
	}

	return matched == len(want)
}

func TestCollector_RecordBootstrapStep(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordBootstrapStep("fetch_token", 25*time.Millisecond, nil)
	c.RecordBootstrapStep("fetch_token", 10*time.Millisecond, errors.New("db down"))

	ok := findMetric(t, reg, "chatdesk_bootstrap_steps_total", map[string]string{"step": "fetch_token", "result": "success"})
	assert.InDelta(t, 1, ok.GetCounter().GetValue(), 0)

	failed := findMetric(t, reg, "chatdesk_bootstrap_steps_total", map[string]string{"step": "fetch_token", "result": "failure"})
	assert.InDelta(t, 1, failed.GetCounter().GetValue(), 0)

	latency := findMetric(t, reg, "chatdesk_bootstrap_step_duration_seconds", map[string]string{"step": "fetch_token"})
	assert.Equal(t, uint64(2), latency.GetHistogram().GetSampleCount())
}

func TestCollector_RecordConnected(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordConnected(true)
	assert.InDelta(t, 1, findMetric(t, reg, "chatdesk_chat_connected", nil).GetGauge().GetValue(), 0)

	c.RecordConnected(false)
	assert.InDelta(t, 0, findMetric(t, reg, "chatdesk_chat_connected", nil).GetGauge().GetValue(), 0)
}

func TestCollector_RecordPhaseAndModeration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordPhase("ready")
	c.RecordPhase("ready")
	c.RecordModerationAction("ban", nil)
	c.RecordModerationAction("flag", errors.New("network"))

	phase := findMetric(t, reg, "chatdesk_screen_phase_transitions_total", map[string]string{"phase": "ready"})
	assert.InDelta(t, 2, phase.GetCounter().GetValue(), 0)

	ban := findMetric(t, reg, "chatdesk_moderation_actions_total", map[string]string{"kind": "ban", "result": "success"})
	assert.InDelta(t, 1, ban.GetCounter().GetValue(), 0)

	flag := findMetric(t, reg, "chatdesk_moderation_actions_total", map[string]string{"kind": "flag", "result": "failure"})
	assert.InDelta(t, 1, flag.GetCounter().GetValue(), 0)
}

func TestCollector_RecordAuditEvent(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuditEvent("ban", false)
	c.RecordAuditEvent("ban", true)
	c.RecordAuditEvent("ban", true)

	first := findMetric(t, reg, "chatdesk_audit_events_total", map[string]string{"kind": "ban", "delivery": "first"})
	assert.InDelta(t, 1, first.GetCounter().GetValue(), 0)

	again := findMetric(t, reg, "chatdesk_audit_events_total", map[string]string{"kind": "ban", "delivery": "redelivered"})
	assert.InDelta(t, 2, again.GetCounter().GetValue(), 0)
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordModerationAction("flag", nil)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "chatdesk_moderation_actions_total")
}

func TestNewRegistry_IncludesRuntimeCollectors(t *testing.T) {
	families, err := NewRegistry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}
