package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-pass-html/models"
)

// Flag names shared by every command.
const (
	FlagConfig       = "config"
	FlagApp          = "app"
	FlagTitle        = "title"
	FlagChunkWorkers = "chunk-workers"
	FlagLogLevel     = "log-level"
	FlagLogFile      = "log-file"
)

// AppTypeValue holds an application type given on the command line.
// It implements the pflag.Value interface and rejects unknown names at parse
// time.
type AppTypeValue struct {
	App models.AppType
}

// String returns the application name or an empty string when unset.
func (a *AppTypeValue) String() string {
	return a.App.String()
}

// Set validates s and stores it.
func (a *AppTypeValue) Set(s string) error {
	t := models.AppType(s)
	if !t.IsValid() {
		return fmt.Errorf("unknown app type %q, want %q or %q", s, models.AppPasswords, models.AppNotes)
	}

	a.App = t
	return nil
}

// Type names the flag value kind in help output.
func (a *AppTypeValue) Type() string {
	return "app"
}

// RegisterFlags adds the configuration flags to fs.
//
// Flags:
//
//	-c/--config        json file path with configs
//	-a/--app           application type (passwords|notes)
//	--title            document title
//	--chunk-workers    concurrent attachment chunk workers
//	--log-level        zerolog level name
//	--log-file         log file path (stderr when empty)
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.VarP(&AppTypeValue{}, FlagApp, "a", "Application type (passwords|notes)")
	fs.String(FlagTitle, "", "Document title")
	fs.Int(FlagChunkWorkers, 0, "Concurrent attachment chunk workers")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Log file path (stderr when empty)")
}

// ParseFlags builds a config from a parsed fs. Flags that were not
// registered or not set leave their fields zero.
func ParseFlags(fs *pflag.FlagSet) *StructuredConfig {
	jsonConfigPath, _ := fs.GetString(FlagConfig)
	title, _ := fs.GetString(FlagTitle)
	chunkWorkers, _ := fs.GetInt(FlagChunkWorkers)
	logLevel, _ := fs.GetString(FlagLogLevel)
	logFile, _ := fs.GetString(FlagLogFile)

	var appType models.AppType
	if f := fs.Lookup(FlagApp); f != nil {
		appType = models.AppType(f.Value.String())
	}

	return &StructuredConfig{
		App: App{
			Type:  appType,
			Title: title,
		},
		Codec: Codec{
			ChunkWorkers: chunkWorkers,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}
