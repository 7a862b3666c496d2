package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/lox/brightcast/internal/cli"
	"github.com/lox/brightcast/internal/prompt"
	"github.com/lox/brightcast/internal/store"
	"github.com/lox/brightcast/internal/weather"
)

const (
	brightLat = -36.7313
	brightLon = 146.9614
)

// baseURL is overridden in tests to point at a stub endpoint.
var baseURL = weather.DefaultBaseURL

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "brightcast: error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		opts, err := cli.Parse(args, stdout, stderr)
		if err != nil {
			return err
		}
		switch {
		case opts.Delete:
			return deleteKey(stdout)
		case opts.Help:
			return cli.Usage(stdout)
		case opts.Version:
			cli.PrintVersion(stdout)
			return nil
		}
	}

	return forecast(stdin, stdout)
}

func deleteKey(stdout io.Writer) error {
	st, path, err := openStore()
	if err != nil {
		return storeError(path, err)
	}
	defer st.Close()

	deleted, err := st.DeleteKey()
	if err != nil {
		return storeError(path, err)
	}
	if deleted {
		fmt.Fprintln(stdout, "API key deleted.")
	} else {
		fmt.Fprintln(stdout, "No API key stored.")
	}
	return nil
}

func forecast(stdin io.Reader, stdout io.Writer) error {
	st, path, err := openStore()
	if err != nil {
		return storeError(path, err)
	}
	defer st.Close()

	key, ok, err := st.GetKey()
	if err != nil {
		return storeError(path, err)
	}
	if !ok {
		key, ok = prompt.New(stdin, stdout, st).PromptForKey()
	}
	if !ok {
		return errors.New("no API key available; sign up at https://openweathermap.org/api and run brightcast again")
	}

	url := weather.ReportURL(baseURL, brightLat, brightLon, key)
	report, err := weather.NewClient().FetchReport(context.Background(), url)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, report)
	return nil
}

// storePath resolves the key store location, honouring the BRIGHTCAST_STORE
// override.
func storePath() (string, error) {
	if path := os.Getenv("BRIGHTCAST_STORE"); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "brightcast", "brightcast.db"), nil
}

func openStore() (*store.Store, string, error) {
	path, err := storePath()
	if err != nil {
		return nil, "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, path, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, path, err
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		db.Close()
		return nil, path, err
	}
	return st, path, nil
}

func storeError(path string, err error) error {
	if path == "" {
		return err
	}
	return fmt.Errorf("key store %s: %w (set BRIGHTCAST_STORE to use a different path)", path, err)
}
