// Copyright 2021 Tamas Gulacsi. All rights reserved.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/UNO-SOFT/tablesheet"
	"github.com/UNO-SOFT/tablesheet/convert"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	fs := flag.NewFlagSet("html2xlsx", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagEnc := fs.String("charset", tablesheet.EncName, "html charset name (empty: sniff)")
	flagOut := fs.String("o", "-", "output file name")
	flagGzip := fs.Bool("z", false, "gzip the output")
	flagMaxStyles := fs.Int("max-styles", convert.DefaultMaxStyles, "maximum number of cell styles per sheet")

	app := ffcli.Command{Name: "html2xlsx", FlagSet: fs,
		ShortUsage: "html2xlsx [flags] [sheet:]file.html ...",
		Options:    []ff.Option{ff.WithEnvVarPrefix("HTML2XLSX")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			sheets := make([]tablesheet.SheetHTML, 0, len(args))
			for i, a := range args {
				name, fn := sheetArg(a, i)
				s, err := tablesheet.ReadHTML(fn, *flagEnc)
				if err != nil {
					return fmt.Errorf("%s: %w", a, err)
				}
				logger.Debug("read", "sheet", name, "file", fn, "length", len(s))
				sheets = append(sheets, tablesheet.SheetHTML{Name: name, HTML: s})
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			opts := convert.DefaultOptions()
			opts.Logger = logger
			opts.MaxStyles = *flagMaxStyles
			b, err := convert.New(opts).Process(sheets)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeOutput(*flagOut, *flagGzip, b)
		},
	}

	if err := app.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

// sheetArg splits a "[sheet:]file" argument.
// Without an explicit name the sheet is named after the file.
func sheetArg(a string, i int) (name, fn string) {
	fn = a
	if _, err := os.Stat(a); err != nil {
		if before, after, ok := strings.Cut(a, ":"); ok && before != "" {
			name, fn = before, after
		}
	}
	if name != "" {
		return name, fn
	}
	if fn == "" || fn == "-" {
		return "Sheet" + strconv.Itoa(i+1), fn
	}
	base := filepath.Base(fn)
	return strings.TrimSuffix(base, filepath.Ext(base)), fn
}

func writeOutput(fn string, compress bool, b []byte) error {
	var w io.Writer = os.Stdout
	var fh *os.File
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Create(fn); err != nil {
			return err
		}
		defer fh.Close()
		w = fh
	}
	if compress {
		zw := gzip.NewWriter(w)
		if _, err := zw.Write(b); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	} else if _, err := w.Write(b); err != nil {
		return err
	}
	if fh != nil {
		return fh.Close()
	}
	return nil
}
