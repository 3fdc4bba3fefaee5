// Package commands implements the sheet-cli commands: read, write,
// meta-read, meta-write, create, clear, authorise and version.
package commands

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/sheet-tools/sheet-cli/auth"
	"github.com/sheet-tools/sheet-cli/sheet"
)

const APP = "sheet-cli"

// Options are the global options shared by all commands, filled in from
// flags, config.yaml and the environment.
type Options struct {
	Credentials string
	Tokens      string
	Debug       bool
}

var options = Options{}

var urlExpr = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// spreadsheetID accepts either a bare spreadsheet ID or a full
// 'https://docs.google.com/spreadsheets/d/...' URL and returns the ID.
func spreadsheetID(arg string) (string, error) {
	if match := urlExpr.FindStringSubmatch(arg); len(match) > 1 {
		return match[1], nil
	}

	if strings.TrimSpace(arg) == "" {
		return "", fmt.Errorf("missing spreadsheet ID")
	}

	if strings.Contains(arg, "/") {
		return "", fmt.Errorf("invalid spreadsheet - expected an ID or a URL like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return arg, nil
}

func newClient(ctx context.Context) (*sheet.Client, error) {
	if strings.TrimSpace(options.Credentials) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	authorised, err := auth.Authorize(options.Credentials, options.Tokens)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	return sheet.NewClient(ctx, authorised)
}

func debugf(format string, args ...any) {
	if options.Debug {
		log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
	}
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}
