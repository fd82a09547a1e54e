package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	valueruntime "github.com/wippyai/value-runtime"
	"github.com/wippyai/value-runtime/config"
	"github.com/wippyai/value-runtime/runtime"
)

func main() {
	var (
		expr        = flag.String("e", "", `Primitive call to evaluate, e.g. 'STR_CAT "ab" "cd"'`)
		configFile  = flag.String("config", "", "Path to YAML configuration")
		list        = flag.Bool("list", false, "List actions and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	if err := run(*expr, *configFile, *list, *interactive, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(expr, configFile string, listOnly, interactive, verbose bool) error {
	ctx := context.Background()

	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	level := cfg.Level()
	if verbose {
		level = zapcore.DebugLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()
	valueruntime.SetLogger(logger)

	rt, err := runtime.New(ctx, runtime.FromConfig(cfg), runtime.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create runtime: %w", err)
	}
	defer rt.Close()

	switch {
	case listOnly:
		listActions(os.Stdout, rt)
		return nil

	case interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(rt)

	case expr != "":
		out, err := eval(rt, expr)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, `Usage: run -e 'STR_CAT "ab" "cd"'`)
		fmt.Fprintln(os.Stderr, "       run -list")
		fmt.Fprintln(os.Stderr, "       run -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       run < calls.txt")
		return fmt.Errorf("nothing to evaluate")
	}
	return batch(rt, os.Stdin, os.Stdout)
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func listActions(w io.Writer, rt *runtime.Runtime) {
	for i, e := range rt.Actions().Entries() {
		canonical := rt.Actions().ResolveByPointer(e.Proc).Name
		if canonical != e.Name && i > 0 {
			fmt.Fprintf(w, "%3d  %-12s (same procedure as %s)\n", i, e.Name, canonical)
			continue
		}
		fmt.Fprintf(w, "%3d  %s\n", i, e.Name)
	}
	for _, name := range rt.Libraries() {
		fmt.Fprintf(w, "     @%s\n", name)
	}
}

// batch evaluates one call per line. Blank lines and lines starting with #
// are skipped. Errors are reported and evaluation continues.
func batch(rt *runtime.Runtime, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	failed := 0
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, err := eval(rt, line)
		if err != nil {
			fmt.Fprintf(w, "%d: error: %v\n", n, err)
			failed++
			continue
		}
		fmt.Fprintln(w, out)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d calls failed", failed)
	}
	return nil
}
