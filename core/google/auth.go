package google

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

const displayVideoScope = "https://www.googleapis.com/auth/display-video"

// Scopes covers the feed spreadsheet, asset folders and the DV360 API.
var Scopes = []string{
	sheets.SpreadsheetsScope,
	drive.DriveReadonlyScope,
	displayVideoScope,
}

var spreadsheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([\w-]+)`)

// SpreadsheetID returns the id from a spreadsheet URL, or the input when it is already an id.
func SpreadsheetID(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", errors.New("spreadsheet id is required")
	}
	if !strings.HasPrefix(identifier, "http") {
		return identifier, nil
	}
	if m := spreadsheetURLPattern.FindStringSubmatch(identifier); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("invalid spreadsheet URL %q", identifier)
}

// OAuthConfig reads the client secret file.
func OAuthConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	config, err := oauthgoogle.ConfigFromJSON(b, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return config, nil
}

// LoadToken reads a cached token.
func LoadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token %s: %w", path, err)
	}
	return tok, nil
}

// SaveToken writes a token readable only by the owner.
func SaveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// TokenSource prefers the cached user token and falls back to application default credentials.
func TokenSource(ctx context.Context, cfg Config) (oauth2.TokenSource, error) {
	if tok, err := LoadToken(cfg.TokenFile); err == nil {
		config, err := OAuthConfig(cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return config.TokenSource(ctx, tok), nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	creds, err := oauthgoogle.FindDefaultCredentials(ctx, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("no token at %s and no default credentials: %w", cfg.TokenFile, err)
	}
	return creds.TokenSource, nil
}

// HTTPClient returns a client that authorises every request.
func HTTPClient(ctx context.Context, cfg Config) (*http.Client, error) {
	ts, err := TokenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}

// Authorise runs the consent flow: it prints the consent URL to out, reads the
// pasted authorisation code from in and stores the exchanged token.
func Authorise(ctx context.Context, config *oauth2.Config, tokenFile string, in io.Reader, out io.Writer) error {
	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Open the following link in your browser, then paste the authorisation code:\n%s\n", url)

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read authorisation code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("no authorisation code entered")
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorisation code: %w", err)
	}
	if err := SaveToken(tokenFile, tok); err != nil {
		return err
	}
	fmt.Fprintf(out, "Token saved to %s\n", tokenFile)
	return nil
}
