package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-html/internal/config"
	"github.com/MKhiriev/go-pass-html/internal/document"
	"github.com/MKhiriev/go-pass-html/internal/logger"
	"github.com/MKhiriev/go-pass-html/internal/service"
	"github.com/MKhiriev/go-pass-html/internal/store"
	"github.com/MKhiriev/go-pass-html/models"
)

// cliApp carries the dependencies built once the configuration is known.
type cliApp struct {
	term terminal

	cfg      *config.StructuredConfig
	log      *logger.Logger
	storages *store.Storages
	services *service.Services
}

func newRootCommand(t terminal) *cobra.Command {
	app := &cliApp{term: t}

	root := &cobra.Command{
		Use:           "passhtml",
		Short:         "Encrypt content into self-decrypting HTML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       buildInfo().String(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if shouldSkipSetup(cmd) {
				return nil
			}
			return app.setup(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newEncryptCommand(app),
		newDecryptCommand(app),
		newImportCommand(app),
		newInfoCommand(app),
		newVersionCommand(),
	)

	return root
}

func (a *cliApp) setup(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// validated by GetStructuredConfig
	level, _ := cfg.Log.ZerologLevel()

	a.cfg = cfg
	a.log = logger.NewCLILogger("cli", cfg.Log.File, level)
	a.storages = store.NewStorages()
	a.services = service.NewServices(a.storages, *cfg, a.log)

	a.log.Debug().
		Str("app", cfg.App.Type.String()).
		Str("command", cmd.Name()).
		Msg("cli configured")
	return nil
}

// loadDocument reads the document at path into the vault.
func (a *cliApp) loadDocument(ctx context.Context, path string) error {
	text, err := a.storages.Documents.LoadDocument(ctx, path)
	if err != nil {
		return err
	}
	return a.services.VaultService.Load(ctx, text)
}

// writeDocument renders env into a document of the configured app and saves
// it at path.
func (a *cliApp) writeDocument(ctx context.Context, path string, env models.Envelope) error {
	var buf bytes.Buffer
	err := document.Render(&buf, document.Document{
		AppType:  a.cfg.App.Type,
		Title:    a.cfg.App.Title,
		Envelope: env,
	})
	if err != nil {
		return err
	}

	return a.storages.Documents.SaveDocument(ctx, path, buf.Bytes())
}

func shouldSkipSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipSetup"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
