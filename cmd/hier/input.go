package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/odvcencio/prodx/pkg/flatfile"
)

// inputSpec says how to read the positional arguments.
type inputSpec struct {
	// format overrides extension detection; required for stdin.
	format string
	// query, when set, treats every argument as a SQLite database and
	// reads records from the query result.
	query string
}

// source is one decoded input.
type source struct {
	name    string
	records []flatfile.Record
}

// readInputs decodes args in parallel and returns them in argument order.
func readInputs(ctx context.Context, args []string, spec inputSpec, stdin io.Reader, log *zap.Logger) ([]source, error) {
	stdinCount := 0
	for _, arg := range args {
		if arg == "-" {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, errors.New("standard input (-) can be read only once")
	}
	if stdinCount == 1 && spec.query != "" {
		return nil, errors.New("--query reads database files, not standard input")
	}

	sources := make([]source, len(args))
	g, ctx := errgroup.WithContext(ctx)
	for i, arg := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				recs []flatfile.Record
				err  error
			)
			switch {
			case arg == "-":
				recs, err = readStdin(stdin, spec.format)
			case spec.query != "":
				recs, err = readDatabase(ctx, arg, spec.query)
			default:
				recs, err = readFile(arg, spec.format)
			}
			if err != nil {
				return err
			}
			log.Debug("input decoded", zap.String("source", displayName(arg)), zap.Int("records", len(recs)))
			sources[i] = source{name: displayName(arg), records: recs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

func displayName(arg string) string {
	if arg == "-" {
		return "<stdin>"
	}
	return arg
}

func readStdin(r io.Reader, format string) ([]flatfile.Record, error) {
	if format == "" {
		format = string(flatfile.JSON)
	}
	f, err := flatfile.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	recs, err := flatfile.Decode(r, f)
	if err != nil {
		return nil, fmt.Errorf("<stdin>: %w", err)
	}
	return recs, nil
}

func readFile(path, format string) ([]flatfile.Record, error) {
	var (
		f   flatfile.Format
		err error
	)
	if format != "" {
		f, err = flatfile.ParseFormat(format)
	} else {
		f, err = flatfile.DetectFormat(path)
	}
	if err != nil {
		return nil, err
	}

	fh, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	recs, err := flatfile.Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func readDatabase(ctx context.Context, path, query string) ([]flatfile.Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, notFound(path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", path, err)
	}
	recs, err := flatfile.DecodeRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func openInput(path string) (*os.File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, notFound(path, err)
	}
	return fh, nil
}

// notFound maps a missing input to exit code 2.
func notFound(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return &exitError{code: exitNotFound, err: fmt.Errorf("%s: file not found", path)}
	}
	return fmt.Errorf("%s: %w", path, err)
}
