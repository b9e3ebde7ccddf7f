package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-html/models"
)

type encryptOptions struct {
	in      string
	options string
	attach  string
	hint    string
	out     string
}

func newEncryptCommand(app *cliApp) *cobra.Command {
	var opts encryptOptions

	cmd := &cobra.Command{
		Use:   "encrypt --in FILE --out DOC",
		Short: "Encrypt content into a new document",
		Long: `Encrypt content into a new document.

For the passwords app FILE holds a JSON list of records; for the notes app it
holds plain text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runEncrypt(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.in, "in", "i", "", "Content file")
	flags.StringVar(&opts.options, "options", "", "JSON options file (app defaults when empty)")
	flags.StringVar(&opts.attach, "attach", "", "File to attach (notes only)")
	flags.StringVar(&opts.hint, "hint", "", "Password hint, stored unencrypted")
	flags.StringVarP(&opts.out, "out", "o", "", "Document to write")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (a *cliApp) runEncrypt(cmd *cobra.Command, opts encryptOptions) error {
	ctx := cmd.Context()
	docs := a.storages.Documents

	content, err := docs.LoadDocument(ctx, opts.in)
	if err != nil {
		return err
	}
	payload, err := payloadFromContent(a.cfg.App.Type, content)
	if err != nil {
		return err
	}

	options := models.DefaultOptionsFor(a.cfg.App.Type)
	if opts.options != "" {
		raw, err := docs.LoadDocument(ctx, opts.options)
		if err != nil {
			return err
		}
		options = json.RawMessage(strings.TrimSpace(raw))
	}

	req := models.EncodeRequest{
		Plain: models.PlainPayload{Options: options, Payload: payload},
		Hint:  opts.hint,
	}
	if opts.attach != "" {
		att, err := docs.LoadAttachment(ctx, opts.attach)
		if err != nil {
			return err
		}
		req.Attachment = &att
	}

	password, err := a.term.readPassword(cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}

	env, err := a.services.VaultService.Encode(ctx, password, req)
	if err != nil {
		return err
	}
	if err = a.writeDocument(ctx, opts.out, env); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.out)
	return nil
}

// payloadFromContent turns file content into the payload of app. Notes are
// stored as a JSON string; password records are taken as JSON.
func payloadFromContent(app models.AppType, content string) (json.RawMessage, error) {
	if app == models.AppNotes {
		b, err := json.Marshal(content)
		if err != nil {
			return nil, fmt.Errorf("encode note: %w", err)
		}
		return b, nil
	}

	var records []models.CredentialRecord
	if err := json.Unmarshal([]byte(content), &records); err != nil {
		return nil, fmt.Errorf("content must be a JSON list of records: %w", err)
	}
	return json.RawMessage(strings.TrimSpace(content)), nil
}
