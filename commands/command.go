package commands

import (
	"fmt"
	"log"
	"regexp"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

const APP = "sheetbatch"
const VERSION = "v0.1.0"

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// Options holds the flags shared by every command. Defaults come from the
// environment (SHEETBATCH_CREDENTIALS etc.) and are overridden by the
// command line.
type Options struct {
	Credentials string `envconfig:"CREDENTIALS"`
	Workdir     string `envconfig:"WORKDIR"`
	Email       string `envconfig:"EMAIL"`
	Debug       bool   `envconfig:"DEBUG"`
}

var options = Options{
	Credentials: DEFAULT_CREDENTIALS,
	Workdir:     DEFAULT_WORKDIR,
}

// Root assembles the CLI command tree.
func Root() *cobra.Command {
	if err := envconfig.Process(APP, &options); err != nil {
		warnf("%v", err)
	}

	root := cobra.Command{
		Use:           APP,
		Short:         "Batching client for Google Sheets",
		Long:          "Stages Google Sheets cell updates locally and sends each spreadsheet's staged requests as a single batchUpdate call",
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&options.Credentials, "credentials", options.Credentials, "Path for the Google OAuth2 'credentials.json' file")
	root.PersistentFlags().StringVar(&options.Workdir, "workdir", options.Workdir, "Directory for working files (cached tokens etc)")
	root.PersistentFlags().BoolVar(&options.Debug, "debug", options.Debug, "Enables debugging information")

	root.AddCommand(authoriseCmd())
	root.AddCommand(createCmd())
	root.AddCommand(getCmd())
	root.AddCommand(putCmd())
	root.AddCommand(versionCmd())

	return &root
}

// spreadsheetID extracts the spreadsheet ID from a docs.google.com URL. A bare
// spreadsheet ID is accepted as-is.
func spreadsheetID(url string) (string, error) {
	if regexp.MustCompile(`^[a-zA-Z0-9-_]+$`).MatchString(url) {
		return url, nil
	}

	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(url)
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func debugf(format string, args ...any) {
	if options.Debug {
		log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
	}
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
