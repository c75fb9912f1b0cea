package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/markin"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/markin")
}

func main() {
	var (
		outPath     string
		standalone  bool
		frontMatter bool
		trace       bool
		widthFlag   int
		check       bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("markin", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&standalone, "standalone", "s", false, "Wrap output in a complete HTML page")
	flags.BoolVar(&frontMatter, "front-matter", true, "Strip and read a leading YAML/TOML/JSON front matter block")
	flags.BoolVar(&trace, "trace", false, "Dump classified lines and parsed blocks to stderr")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Trace width override (0 uses terminal width if available)")
	flags.BoolVar(&check, "check", false, "Verify the generated markup is balanced")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: markin [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	reader, err := readInputs(context.Background(), flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := createOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	var opts []markin.Option
	var tracer *markin.TextTracer
	if trace {
		tracer = markin.NewTextTracer(os.Stderr, resolveWidth(widthFlag, os.Stderr))
		opts = append(opts, markin.WithTracer(tracer))
	}

	if err := run(reader, writer, runConfig{
		standalone:  standalone,
		frontMatter: frontMatter,
		check:       check,
		options:     opts,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if tracer != nil && tracer.Err() != nil {
		fmt.Fprintf(os.Stderr, "trace: %v\n", tracer.Err())
	}
}

type runConfig struct {
	standalone  bool
	frontMatter bool
	check       bool
	options     []markin.Option
}

func run(r io.Reader, w io.Writer, cfg runConfig) error {
	var buf bytes.Buffer
	out := w
	if cfg.check {
		out = &buf
	}
	if err := markin.Render(markin.RenderRequest{
		Reader:      r,
		Writer:      out,
		FrontMatter: cfg.frontMatter,
		Standalone:  cfg.standalone,
		Options:     cfg.options,
	}); err != nil {
		return err
	}
	if !cfg.check {
		return nil
	}
	if err := markin.CheckMarkup(bytes.NewReader(buf.Bytes())); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func resolveWidth(width int, f *os.File) int {
	if width > 0 {
		return width
	}
	return terminalWidth(f, defaultWidth)
}

func terminalWidth(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// readInputs joins the named files and URLs into one source, starting each
// input on a new line. With no arguments it reads stdin.
func readInputs(ctx context.Context, args []string) (io.Reader, error) {
	if len(args) == 0 {
		return os.Stdin, nil
	}
	var buf bytes.Buffer
	for _, arg := range args {
		data, err := readInput(ctx, arg)
		if err != nil {
			return nil, err
		}
		if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
			buf.WriteByte('\n')
		}
		buf.Write(data)
	}
	return &buf, nil
}

func readInput(ctx context.Context, arg string) ([]byte, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	path := arg
	if u, err := url.Parse(arg); err == nil {
		switch u.Scheme {
		case "http", "https":
			body, err := markin.FetchSource(ctx, nil, arg)
			if err != nil {
				return nil, err
			}
			defer body.Close()
			return io.ReadAll(body)
		case "file":
			path = u.Path
		}
	}
	return os.ReadFile(path)
}

// createOutput opens path for writing, creating parent directories. An empty
// path means stdout.
func createOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
