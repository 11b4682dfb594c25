package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/exprtree"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("exprtree failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := defaultConfig()
	var (
		cfgfile    string
		echo, dump bool
	)
	fs := flag.NewFlagSet("exprtree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: exprtree [flags] [formula]")
		fmt.Fprintln(fs.Output(), "functions:", strings.Join(exprtree.Funcs(), ", "))
		fs.PrintDefaults()
	}
	fs.StringVar(&cfgfile, "config", "", "YAML config file (flags override it)")
	fs.Float64Var(&cfg.MaxX, "maxx", cfg.MaxX, "plot X from -maxx to maxx")
	fs.Float64Var(&cfg.MaxY, "maxy", cfg.MaxY, "plot Y from -maxy to maxy")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "plot width in columns")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "plot height in rows")
	fs.IntVar(&cfg.NestingLimit, "nesting", cfg.NestingLimit, "maximum bracket nesting")
	fs.BoolVar(&cfg.Simplify, "simplify", cfg.Simplify, "simplify before plotting")
	fs.StringVar(&cfg.Logging.LogLevel, "log-level", cfg.Logging.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&echo, "echo", false, "print postfix and parse trees")
	fs.BoolVar(&dump, "dump", false, "print the structure of the plotted tree")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if cfgfile != "" {
		cfg = defaultConfig()
		if err := loadConfig(cfgfile, &cfg); err != nil {
			return err
		}
		// Apply the flags again so they take precedence over the file.
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	log, closelog := newLogger(cfg.Logging, stderr)
	defer closelog()
	slog.SetDefault(log)

	src, err := formula(cfg.Formula, fs.Args(), stdin)
	if err != nil {
		return err
	}
	e, err := build(src, cfg, echo, stdout)
	if err != nil {
		return err
	}
	if dump {
		fmt.Fprintln(stdout, repr.String(dumpTree(e), repr.Indent("  "), repr.OmitEmpty(true)))
	}

	pts := exprtree.Sample(e, -cfg.MaxX, cfg.MaxX, cfg.Width)
	c := newCanvas(cfg.Width, cfg.Height, cfg.MaxX, cfg.MaxY)
	marked := c.plot(pts)
	slog.Debug("sampled", slog.Int("points", len(pts)), slog.Int("plotted", marked))
	if marked == 0 {
		slog.Warn("nothing to plot in range", slog.String("expr", e.String()))
	}
	if _, err := c.WriteTo(stdout); err != nil {
		return fmt.Errorf("writing plot: %w", err)
	}
	return nil
}

// formula picks the expression to plot: command line arguments first, then
// the config file, then the first line of stdin.
func formula(conf string, args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if conf != "" {
		return conf, nil
	}
	sc := bufio.NewScanner(stdin)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("reading formula: %w", err)
		}
		return "", errors.New("no formula given")
	}
	return sc.Text(), nil
}

// build parses src and simplifies it if the config asks for it.
func build(src string, cfg config, echo bool, stdout io.Writer) (*exprtree.Expr, error) {
	rpn, err := exprtree.Tokenize(src, exprtree.NestingLimit(cfg.NestingLimit))
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", src, err)
	}
	e, err := exprtree.Build(rpn)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", src, err)
	}
	slog.Debug("parsed", slog.String("formula", src), slog.String("postfix", rpn.String()), slog.String("tree", e.String()))
	if echo {
		fmt.Fprintf(stdout, "postfix: %v\n", rpn)
		fmt.Fprintf(stdout, "tree: %v\n", e)
	}
	if !cfg.Simplify {
		return e, nil
	}
	s, err := e.Simplify()
	if err != nil {
		return nil, fmt.Errorf("simplifying %v: %w", e, err)
	}
	slog.Debug("simplified", slog.String("tree", s.String()), slog.Int("depth", s.Depth()))
	if echo {
		fmt.Fprintf(stdout, "simplified: %v\n", s)
	}
	return s, nil
}

// dumpNode is the exported structure of a tree for printing.
type dumpNode struct {
	Kind     string
	Value    *float64
	Func     string
	Operands []dumpNode
}

func dumpTree(e *exprtree.Expr) dumpNode {
	d := dumpNode{Kind: e.Kind().String()}
	if v, ok := e.Value(); ok {
		d.Value = &v
	}
	if f, ok := e.Func(); ok {
		d.Func = f.String()
	}
	for _, op := range e.Operands() {
		d.Operands = append(d.Operands, dumpTree(op))
	}
	return d
}
