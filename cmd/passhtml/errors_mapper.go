package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-html/internal/app"
	"github.com/MKhiriev/go-pass-html/internal/config"
	"github.com/MKhiriev/go-pass-html/internal/service"
	"github.com/MKhiriev/go-pass-html/internal/store"
)

// Exit codes.
const (
	exitFailure        = 1
	exitConfig         = 2
	exitWrongPassword  = 3
	exitDocumentReject = 4
)

type errorDescription struct {
	target  error
	message string
	code    int
}

// errorDescriptions is ordered: the first match wins.
var errorDescriptions = []errorDescription{
	{service.ErrAuthenticationOrPasswordFailure, app.MsgWrongPassword, exitWrongPassword},
	{service.ErrEmptyPassword, app.MsgNoPassword, exitFailure},
	{errNoPassword, app.MsgNoPassword, exitFailure},
	{errPasswordMismatch, app.MsgPasswordMismatch, exitFailure},
	{errDocumentEmpty, app.MsgDocumentEmpty, exitFailure},
	{service.ErrNoEnvelope, app.MsgDocumentEmpty, exitFailure},

	{service.ErrAppTypeMismatch, app.MsgAppTypeMismatch, exitDocumentReject},
	{service.ErrAppTypeUndetermined, app.MsgNotOurDocument, exitDocumentReject},
	{service.ErrMalformedEnvelope, app.MsgNotOurDocument, exitDocumentReject},
	{service.ErrSchemaViolation, app.MsgIncompatibleDocument, exitDocumentReject},

	{service.ErrAttachmentNotSupported, app.MsgAttachmentNotSupported, exitFailure},
	{service.ErrInvalidEncodeRequest, app.MsgInvalidContent, exitFailure},
	{store.ErrDocumentNotFound, app.MsgDocumentNotFound, exitFailure},

	{config.ErrInvalidAppConfigs, app.MsgInvalidConfig, exitConfig},
	{config.ErrInvalidCodecConfigs, app.MsgInvalidConfig, exitConfig},
	{config.ErrInvalidLogConfigs, app.MsgInvalidConfig, exitConfig},
}

// describeError returns the message shown to the user for err and the
// process exit code.
func describeError(err error) (string, int) {
	for _, d := range errorDescriptions {
		if !errors.Is(err, d.target) {
			continue
		}
		if d.target == service.ErrAuthenticationOrPasswordFailure || err.Error() == d.message {
			return d.message, d.code
		}
		return fmt.Sprintf("%s (%v)", d.message, err), d.code
	}
	return err.Error(), exitFailure
}
