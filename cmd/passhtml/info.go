package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newInfoCommand(app *cliApp) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info DOC",
		Short: "Show what a document holds without decrypting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.loadDocument(cmd.Context(), args[0]); err != nil {
				return err
			}

			vault := app.services.VaultService
			env := vault.Current()

			view := infoJSON{
				App:           vault.AppType(),
				HasEnvelope:   vault.HasEnvelope(),
				Hint:          vault.Hint(),
				HasAttachment: env.HasAttachment(),
				Chunks:        len(env.Slices),
			}
			if view.HasEnvelope {
				view.Version = env.Version.String()
			}
			for k := range env.Extra {
				view.ExtraFields = append(view.ExtraFields, k)
			}
			slices.Sort(view.ExtraFields)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}

			rows := [][]string{
				{"App", view.App.String()},
				{"Encrypted content", yesNo(view.HasEnvelope)},
				{"Version", view.Version},
				{"Hint", view.Hint},
				{"Attachment", yesNo(view.HasAttachment)},
				{"Attachment chunks", strconv.Itoa(view.Chunks)},
				{"Extra fields", strings.Join(view.ExtraFields, ", ")},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}
