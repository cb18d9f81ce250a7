package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetbatch/sheetbatch"
)

// authorize builds an authenticated HTTP client from the OAuth2 credentials
// file, reusing the token cached under workdir. If no cached token exists the
// console flow is run and the obtained token cached for subsequent runs.
func authorize(ctx context.Context, credentials, scope, workdir string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	token, err := tokenFromFile(tokenPath(credentials, workdir))
	if err != nil {
		if token, err = tokenFromConsole(ctx, config); err != nil {
			return nil, err
		}

		if err := saveToken(tokenPath(credentials, workdir), token); err != nil {
			return nil, err
		}
	}

	return config.Client(ctx, token), nil
}

// tokenPath derives the cached token file name from the credentials file name,
// e.g. credentials.json -> <workdir>/credentials.sheets.
func tokenPath(credentials, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(workdir, fmt.Sprintf("%s.sheets", name))
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, errors.WithStack(err)
	}

	return &token, nil
}

func tokenFromConsole(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", url)

	code := ""
	if _, err := fmt.Scan(&code); err != nil {
		return nil, errors.Wrap(err, "unable to read authorization code")
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "unable to retrieve token from web")
	}

	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return errors.WithStack(err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "unable to cache oauth token")
	}

	defer f.Close()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return errors.WithStack(err)
	}

	infof("Cached oauth token to %s", path)

	return nil
}

// newClient authorises against the Sheets API and wraps the service in a
// batching client.
func newClient(ctx context.Context) (*sheetbatch.Client, error) {
	httpc, err := authorize(ctx, options.Credentials, SHEETS, options.Workdir)
	if err != nil {
		return nil, errors.Wrap(err, "authentication/authorization error")
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(httpc))
	if err != nil {
		return nil, errors.Wrap(err, "unable to create new Sheets client")
	}

	opts := []sheetbatch.Option{}
	if options.Email != "" {
		opts = append(opts, sheetbatch.WithAccountEmail(options.Email))
	}

	return sheetbatch.NewClient(service, opts...), nil
}
