package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCommand(app *cliApp) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "import FOREIGN --out DOC",
		Short: "Move the encrypted content of another document into a new one",
		Long: `Move the encrypted content of another document into a new one.

The envelope of FOREIGN is validated and rewritten unchanged into DOC; no
password is needed. FOREIGN must belong to the configured app.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			text, err := app.storages.Documents.LoadDocument(ctx, args[0])
			if err != nil {
				return err
			}
			env, err := app.services.VaultService.ImportFromText(ctx, text)
			if err != nil {
				return err
			}
			if err = app.writeDocument(ctx, out, env); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported envelope (version %s) into %s\n", env.Version, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Document to write")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
