package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-html/internal/app"
	"github.com/MKhiriev/go-pass-html/internal/config"
	"github.com/MKhiriev/go-pass-html/internal/service"
	"github.com/MKhiriev/go-pass-html/internal/store"
)

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantMsg  string
		wantCode int
	}{
		{
			name:     "wrong password hides details",
			err:      fmt.Errorf("%w: tag mismatch", service.ErrAuthenticationOrPasswordFailure),
			wantMsg:  app.MsgWrongPassword,
			wantCode: exitWrongPassword,
		},
		{
			name:     "schema violation keeps details",
			err:      fmt.Errorf("%w: missing or invalid field: iv", service.ErrSchemaViolation),
			wantMsg:  app.MsgIncompatibleDocument + " (schema violation: missing or invalid field: iv)",
			wantCode: exitDocumentReject,
		},
		{
			name:     "plain sentinel",
			err:      errDocumentEmpty,
			wantMsg:  app.MsgDocumentEmpty,
			wantCode: exitFailure,
		},
		{
			name:     "missing file",
			err:      fmt.Errorf("%w: a.html", store.ErrDocumentNotFound),
			wantMsg:  app.MsgDocumentNotFound + " (document was not found: a.html)",
			wantCode: exitFailure,
		},
		{
			name:     "config",
			err:      fmt.Errorf("load config: %w", config.ErrInvalidCodecConfigs),
			wantMsg:  app.MsgInvalidConfig + " (load config: " + config.ErrInvalidCodecConfigs.Error() + ")",
			wantCode: exitConfig,
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			wantMsg:  "boom",
			wantCode: exitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, code := describeError(tt.err)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
