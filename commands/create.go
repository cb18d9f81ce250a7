package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func createCmd() *cobra.Command {
	title := ""

	cmd := cobra.Command{
		Use:   "create",
		Short: "Creates a new Google Sheets spreadsheet",
		Long:  "Creates a new spreadsheet with the given title and prints its spreadsheet ID and URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("--title is a required option")
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := client.CreateSpreadsheet(cmd.Context(), title)
			if err != nil {
				return err
			}

			infof("Created spreadsheet %s", spreadsheet.ID())

			fmt.Printf("%s\n", spreadsheet.ID())
			fmt.Printf("%s\n", spreadsheet.URL())

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", title, "Title for the new spreadsheet")

	return &cmd
}
