// Package auth implements the OAuth2 boundary: it turns a downloaded
// 'credentials.json' client secret into an authorised HTTP client, caching
// the exchanged token in a local JSON file for reuse.
package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// SHEETS is the OAuth2 scope for full spreadsheet access.
const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// Authorize returns an HTTP client authorised for the Sheets API. tokens
// is the path of the cached token file; if empty it defaults to
// '<credentials>.tokens' next to the credentials file. Without a cached
// token the console exchange flow runs and the result is saved.
func Authorize(credentials, tokens string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file (%v)", err)
	}

	config, err := google.ConfigFromJSON(b, SHEETS)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials file (%v)", err)
	}

	if tokens == "" {
		dir, file := filepath.Split(credentials)
		name := strings.TrimSuffix(file, filepath.Ext(file))
		tokens = filepath.Join(dir, fmt.Sprintf("%s.tokens", name))
	}

	token, err := tokenFromFile(tokens)
	if err != nil {
		if token, err = tokenFromWeb(config); err != nil {
			return nil, err
		}

		if err := saveToken(tokens, token); err != nil {
			return nil, err
		}
	}

	return config.Client(context.Background(), token), nil
}

// Requests a token from the web, prompting for the authorisation code on
// the console.
func tokenFromWeb(config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(context.TODO(), code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	return token, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

// Saves a token to a file path, readable by the owner only.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%v)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
