// Command vecalc evaluates vector operations from the command line.
//
//	vecalc [-config path] <op> <vector> [<vector> ...]
//
// Vectors are written as "(x, y, z)", "x,y,z" or "x,y".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"sci3d/internal/config"
)

var (
	configPath = flag.String("config", "", "Path to YAML config (defaults are used when empty)")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecalc: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecalc: init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	op, args := flag.Arg(0), flag.Args()[1:]
	logger.Debug("evaluating",
		zap.String("op", op),
		zap.Strings("args", args),
		zap.String("config_path", *configPath),
		zap.Float64("tol_length", cfg.Tolerance.Length),
		zap.Float64("tol_norm_length", cfg.Tolerance.NormLength),
	)

	if err := run(os.Stdout, cfg, op, args); err != nil {
		logger.Error("operation failed", zap.String("op", op), zap.Error(err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: vecalc [-config path] <op> <vector> [<vector> ...]\n\nops:\n")
	for _, name := range opNames() {
		fmt.Fprintf(w, "  %-10s %s\n", name, ops[name].help)
	}
	fmt.Fprintln(w)
	flag.PrintDefaults()
}

// run evaluates op over args and writes the result to w.
func run(w io.Writer, cfg *config.Config, op string, args []string) error {
	o, ok := ops[op]
	if !ok {
		return fmt.Errorf("unknown op %q", op)
	}
	vs, err := parseVectors(args, o.arity)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	res, err := o.eval(cfg, vs)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = fmt.Fprintln(w, res)
	return err
}
