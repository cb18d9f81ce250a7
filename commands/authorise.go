package commands

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func authoriseCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:     "authorise",
		Aliases: []string{"authorize"},
		Short:   "Authorises " + APP + " to access Google Sheets",
		Long:    "Runs the OAuth2 console flow against the credentials file and caches the obtained token under the working directory. Subsequent commands reuse the cached token.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// discard any stale cached token so the flow always runs
			tokens := tokenPath(options.Credentials, options.Workdir)
			if err := os.Remove(tokens); err != nil && !os.IsNotExist(err) {
				return errors.WithStack(err)
			}

			debugf("Credentials:%s  tokens:%s", options.Credentials, tokens)

			if _, err := authorize(cmd.Context(), options.Credentials, SHEETS, options.Workdir); err != nil {
				return errors.Wrap(err, "authorisation error")
			}

			infof("Authorised %s for scope %s", APP, SHEETS)

			return nil
		},
	}

	return &cmd
}
