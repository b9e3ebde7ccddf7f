package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-html/models"
)

type StructuredJSONConfig struct {
	App struct {
		Type  string `json:"type"`
		Title string `json:"title"`
	} `json:"app,omitempty"`

	Codec struct {
		ChunkWorkers int `json:"chunk_workers"`
	} `json:"codec,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Type:  models.AppType(jsonCfg.App.Type),
			Title: jsonCfg.App.Title,
		},
		Codec: Codec{
			ChunkWorkers: jsonCfg.Codec.ChunkWorkers,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
