package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-html/models"
)

var (
	errDocumentEmpty  = errors.New("document holds no encrypted content")
	errRecordRequired = errors.New("--copy needs --record for the passwords app")
	errRecordNotFound = errors.New("record not found")
)

type decryptOptions struct {
	saveAttachment string
	copy           bool
	record         string
	showPasswords  bool
	json           bool
}

func newDecryptCommand(app *cliApp) *cobra.Command {
	var opts decryptOptions

	cmd := &cobra.Command{
		Use:   "decrypt DOC",
		Short: "Decrypt a document and print its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runDecrypt(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.saveAttachment, "save-attachment", "", "Directory to write the attachment into")
	flags.BoolVar(&opts.copy, "copy", false, "Copy to the clipboard instead of printing")
	flags.StringVar(&opts.record, "record", "", "Title of the record whose password --copy takes")
	flags.BoolVar(&opts.showPasswords, "show-passwords", false, "Print passwords in clear text")
	flags.BoolVar(&opts.json, "json", false, "Print the decrypted envelope as JSON")

	return cmd
}

func (a *cliApp) runDecrypt(cmd *cobra.Command, path string, opts decryptOptions) error {
	ctx := cmd.Context()
	vault := a.services.VaultService

	if err := a.loadDocument(ctx, path); err != nil {
		return err
	}
	if !vault.HasEnvelope() {
		return errDocumentEmpty
	}
	if hint := vault.Hint(); hint != "" && a.term.isTerminal() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Hint: %s\n", hint)
	}

	password, err := a.term.readPassword(cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}

	decoded, err := vault.Decode(ctx, password)
	if err != nil {
		return err
	}

	if opts.saveAttachment != "" && decoded.Attachment != nil {
		written, err := a.storages.Documents.SaveAttachment(ctx, opts.saveAttachment, *decoded.Attachment)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved attachment to %s\n", written)
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.copy:
		text, err := a.clipboardText(decoded, opts.record)
		if err != nil {
			return err
		}
		if err = a.term.clipboard(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
		return nil
	case opts.json:
		view := decodedJSON{
			App:     a.cfg.App.Type,
			Version: decoded.Version.String(),
			Hint:    decoded.Hint,
			Options: decoded.Options,
			Payload: decoded.Payload,
		}
		if decoded.Attachment != nil {
			view.Attachment = decoded.Attachment.FileName
		}
		return writeJSON(out, view)
	case a.cfg.App.Type == models.AppNotes:
		fmt.Fprintln(out, noteText(decoded.Payload))
		return nil
	default:
		records, err := decodeRecords(decoded.Payload)
		if err != nil {
			// not a record list, show it as is
			fmt.Fprintln(out, string(decoded.Payload))
			return nil
		}
		var recordOpts models.PasswordsOptions
		_ = json.Unmarshal(decoded.Options, &recordOpts)
		if opts.showPasswords {
			recordOpts.ShowPasswords = true
		}
		fmt.Fprintln(out, renderRecords(records, recordOpts))
		return nil
	}
}

func (a *cliApp) clipboardText(decoded models.DecodedPayload, title string) (string, error) {
	if a.cfg.App.Type == models.AppNotes {
		return noteText(decoded.Payload), nil
	}
	if title == "" {
		return "", errRecordRequired
	}

	records, err := decodeRecords(decoded.Payload)
	if err != nil {
		return "", err
	}
	for _, r := range records {
		if strings.EqualFold(r.Title, title) {
			return r.Password, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errRecordNotFound, title)
}

func decodeRecords(payload json.RawMessage) ([]models.CredentialRecord, error) {
	var records []models.CredentialRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// noteText returns the note a payload holds. Payloads that are not a JSON
// string are returned verbatim.
func noteText(payload json.RawMessage) string {
	var s string
	if err := json.Unmarshal(payload, &s); err != nil {
		return string(payload)
	}
	return s
}
