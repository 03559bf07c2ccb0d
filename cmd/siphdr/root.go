package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/siphdr/header"
	"github.com/ghettovoice/siphdr/internal/errorutil"
	"github.com/ghettovoice/siphdr/internal/ioutil"
	"github.com/ghettovoice/siphdr/internal/log"
)

type config struct {
	compact   bool
	sort      bool
	check     bool
	json      bool
	logFormat string
	logLevel  string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:           "siphdr [header line...]",
		Short:         "Parse, validate and normalize SIP header lines",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(cfg.logLevel)
			if err != nil {
				return errtrace.Wrap(fmt.Errorf("invalid log level %q: %w", cfg.logLevel, err))
			}
			logger := log.New(stderr, cfg.logFormat, lvl)

			lines := args
			if len(lines) == 0 {
				if lines, err = readLines(stdin); err != nil {
					logger.Error("failed to read input", slog.Any("error", err))
					return errtrace.Wrap(err)
				}
			}
			err = run(cfg, lines, stdout, logger)
			if err != nil {
				logger.Error("done with errors", slog.Any("error", err))
			}
			return errtrace.Wrap(err)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.compact, "compact", "c", false, "render compact header names")
	flags.BoolVarP(&cfg.sort, "sort", "s", false, "sort headers in the canonical message order")
	flags.BoolVar(&cfg.check, "check", false, "fail on headers that are parsed but invalid")
	flags.BoolVar(&cfg.json, "json", false, "print headers as JSON objects")
	flags.StringVar(&cfg.logFormat, "log-format", log.FormatConsole, "log format: console, dev or json")
	flags.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	return cmd
}

// readLines reads header lines joining folded continuation lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(lines) > 0 && (line[0] == ' ' || line[0] == '\t') {
			lines[len(lines)-1] += "\r\n" + line
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return lines, nil
}

func run(cfg config, lines []string, out io.Writer, logger *slog.Logger) error {
	var (
		hdrs   []header.Header
		failed int
	)
	for _, line := range lines {
		hs, err := header.ParseAll(line)
		if err != nil {
			failed++
			logger.Warn("failed to parse header", slog.Any("line", log.StringValue(line)), slog.Any("error", err))
			continue
		}
		for _, hdr := range hs {
			logger.Debug("header parsed", slog.Any("header", hdr))
			if cfg.check && !hdr.IsValid() {
				failed++
				logger.Warn("invalid header", slog.Any("header", hdr))
				continue
			}
			hdrs = append(hdrs, hdr)
		}
	}

	if cfg.sort {
		header.Sort(hdrs)
	}

	opts := &header.RenderOptions{Compact: cfg.compact}
	cw := ioutil.NewCountingWriter(out)
	for _, hdr := range hdrs {
		if cfg.json {
			data, err := header.ToJSON(hdr)
			if err != nil {
				return errtrace.Wrap(err)
			}
			cw.Write(data)       //nolint:errcheck
			cw.WriteString("\n") //nolint:errcheck
			continue
		}
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(hdr.RenderTo(w, opts)) })
		cw.WriteString("\r\n") //nolint:errcheck
	}
	if _, err := cw.Result(); err != nil {
		return errtrace.Wrap(err)
	}
	logger.Debug("headers rendered", slog.Int("count", len(hdrs)), slog.Int("bytes", cw.Count()))

	if failed > 0 {
		return errtrace.Wrap(errorutil.Errorf("%d headers failed", failed))
	}
	return nil
}
