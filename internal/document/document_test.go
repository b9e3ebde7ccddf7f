package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-html/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockedEnvelope() models.Envelope {
	env := models.NewEmptyEnvelope()
	env.IV = "AAECAwQFBgcICQoLDA0ODw=="
	env.Ciphertext = "xbmPbVOrRhwJwalQCxa1KI6SMt5p0ZItMgBV0tmMgAc="
	env.Hint = "favourite colour"
	return env
}

func TestRender_RoundTrip(t *testing.T) {
	env := lockedEnvelope()
	env.Extra = map[string]json.RawMessage{"future": json.RawMessage(`{"a":1}`)}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Document{AppType: models.AppNotes, Title: "My notes", Envelope: env}))
	text := buf.String()

	app, err := ExtractAppType(text)
	require.NoError(t, err)
	assert.Equal(t, models.AppNotes, app)

	raw, err := ExtractEnvelope(text)
	require.NoError(t, err)

	var back models.Envelope
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, env.IV, back.IV)
	assert.Equal(t, env.Ciphertext, back.Ciphertext)
	assert.Equal(t, env.Hint, back.Hint)
	assert.JSONEq(t, `{"a":1}`, string(back.Extra["future"]))

	assert.Contains(t, text, "<title>My notes</title>")
	assert.Contains(t, text, "This document is encrypted.")
	assert.Contains(t, text, "Hint: favourite colour")
}

func TestRender_EmptyEnvelope(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Document{AppType: models.AppPasswords, Envelope: models.NewEmptyEnvelope()}))

	assert.Contains(t, buf.String(), "This document is empty.")
	assert.NotContains(t, buf.String(), "Hint:")
}

func TestRender_HostileHint(t *testing.T) {
	env := lockedEnvelope()
	env.Hint = `</script><script>alert(1)</script>`

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Document{AppType: models.AppPasswords, Title: "<b>t</b>", Envelope: env}))
	text := buf.String()

	// only the template's own closing tag may appear
	assert.Equal(t, 1, strings.Count(text, "</script>"))
	assert.NotContains(t, text, "<b>t</b>")

	raw, err := ExtractEnvelope(text)
	require.NoError(t, err)

	var back models.Envelope
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, env.Hint, back.Hint)
}

func TestRender_InvalidAppType(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Document{AppType: "wallet", Envelope: models.NewEmptyEnvelope()})
	require.ErrorIs(t, err, ErrInvalidAppType)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriterFailure(t *testing.T) {
	err := Render(failingWriter{}, Document{AppType: models.AppPasswords, Envelope: models.NewEmptyEnvelope()})
	require.ErrorIs(t, err, ErrRenderingDocument)
}

func TestExtractAppType(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    models.AppType
		wantErr error
	}{
		{"marker", `<head><meta name="passhtml-app" content="passwords"></head>`, models.AppPasswords, nil},
		{"self-closing", `<meta name="passhtml-app" content="notes" />`, models.AppNotes, nil},
		{"unknown app kept", `<meta name="passhtml-app" content="wallet">`, "wallet", nil},
		{"missing", `<html><body>nothing here</body></html>`, "", ErrMarkerNotFound},
		{"other meta", `<meta name="generator" content="passwords">`, "", ErrMarkerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAppType(tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{"inline", `<script id="passhtml-envelope" type="application/json">{"iv":"x"}</script>`, `{"iv":"x"}`, nil},
		{"multiline", "<script id=\"passhtml-envelope\" type=\"application/json\">\n  {\"iv\":\n\"x\"}\n</script>", "{\"iv\":\n\"x\"}", nil},
		{"not json is returned as is", `<script id="passhtml-envelope" type="application/json">oops</script>`, `oops`, nil},
		{"blank", `<script id="passhtml-envelope" type="application/json">  </script>`, "", ErrMarkerNotFound},
		{"missing", `<script>var x = 1;</script>`, "", ErrMarkerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractEnvelope(tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
