// Package document renders and parses the host HTML document that carries an
// encrypted envelope.
//
// A document holds two machine-readable sections:
//
//	<meta name="passhtml-app" content="passwords">
//	<script id="passhtml-envelope" type="application/json">{...}</script>
//
// The first names the application that produced the document, the second is
// the envelope as JSON. Everything else in the document is presentation and is
// ignored on import.
package document

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-pass-html/models"
)

var (
	// ErrMarkerNotFound is returned when a document lacks the app-type marker
	// or the envelope section.
	ErrMarkerNotFound = errors.New("document marker not found")

	// ErrInvalidAppType is returned by Render for an unknown application.
	ErrInvalidAppType = errors.New("invalid app type")

	ErrRenderingDocument = errors.New("failed to render document")
)

//go:embed templates/document.html.tmpl
var templateFS embed.FS

var documentTemplate = template.Must(template.ParseFS(templateFS, "templates/document.html.tmpl"))

var (
	appTypePattern  = regexp.MustCompile(`<meta\s+name="passhtml-app"\s+content="([^"]*)"\s*/?>`)
	envelopePattern = regexp.MustCompile(`(?s)<script\s+id="passhtml-envelope"\s+type="application/json">(.*?)</script>`)
)

// Document is the input of Render.
type Document struct {
	AppType  models.AppType
	Title    string
	Envelope models.Envelope
}

type view struct {
	AppType  string
	Title    string
	Locked   bool
	Hint     string
	Envelope template.JS
}

// Render writes doc as a complete HTML document to w.
//
// Output is produced into a buffer first; when rendering fails nothing is
// written to w.
func Render(w io.Writer, doc Document) error {
	if !doc.AppType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAppType, doc.AppType)
	}

	// encoding/json escapes <, > and & so the literal cannot close the
	// script element.
	envelope, err := json.Marshal(doc.Envelope)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}

	v := view{
		AppType:  doc.AppType.String(),
		Title:    doc.Title,
		Locked:   doc.Envelope.HasCiphertext(),
		Hint:     doc.Envelope.Hint,
		Envelope: template.JS(envelope),
	}

	var buf bytes.Buffer
	if err = documentTemplate.Execute(&buf, v); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}

	if _, err = buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}

	return nil
}

// ExtractAppType returns the application name carried by the document's
// app-type marker. The value is returned as found, known or not.
func ExtractAppType(text string) (models.AppType, error) {
	m := appTypePattern.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("%w: app type", ErrMarkerNotFound)
	}

	return models.AppType(strings.TrimSpace(m[1])), nil
}

// ExtractEnvelope returns the raw envelope literal embedded in the document.
// The literal is not parsed.
func ExtractEnvelope(text string) ([]byte, error) {
	m := envelopePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: envelope", ErrMarkerNotFound)
	}

	literal := strings.TrimSpace(m[1])
	if literal == "" {
		return nil, fmt.Errorf("%w: envelope", ErrMarkerNotFound)
	}

	return []byte(literal), nil
}
