package service

import "time"

// MetricsRecorder records bootstrap, moderation and audit outcomes.
type MetricsRecorder interface {
	RecordBootstrapStep(step string, duration time.Duration, err error)
	RecordPhase(phase string)
	RecordConnected(connected bool)
	RecordModerationAction(kind string, err error)

	// RecordAuditEvent counts an audit event received by the audit worker.
	RecordAuditEvent(kind string, duplicate bool)
}
