package main

import (
	"encoding/json"
	"io"

	"github.com/MKhiriev/go-pass-html/models"
)

type decodedJSON struct {
	App        models.AppType  `json:"app"`
	Version    string          `json:"version"`
	Hint       string          `json:"hint,omitempty"`
	Options    json.RawMessage `json:"options"`
	Payload    json.RawMessage `json:"payload"`
	Attachment string          `json:"attachment,omitempty"`
}

type infoJSON struct {
	App           models.AppType `json:"app"`
	HasEnvelope   bool           `json:"has_envelope"`
	Version       string         `json:"version,omitempty"`
	Hint          string         `json:"hint,omitempty"`
	HasAttachment bool           `json:"has_attachment"`
	Chunks        int            `json:"chunks,omitempty"`
	ExtraFields   []string       `json:"extra_fields,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
