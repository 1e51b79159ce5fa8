// Package sanitize strips markup from chat text before it leaves the control surface.
package sanitize

import (
	"chatdesk/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/fx"
)

// strictSanitizer removes every HTML element. Script and style contents are dropped.
type strictSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer returns a TextSanitizer backed by bluemonday's strict policy.
func NewTextSanitizer() service.TextSanitizer {
	return &strictSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize returns text with all markup removed. The result is HTML-escaped.
func (s *strictSanitizer) Sanitize(text string) string {
	if text == "" {
		return ""
	}

	return s.policy.Sanitize(text)
}

// Module provides the sanitizer FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTextSanitizer),
)
