// SPDX-License-Identifier: MIT

// Command gasnet inspects, generates, converts and linearises gas network
// snapshots.
//
// Usage:
//
//	gasnet inspect [-matrix] <net>
//	gasnet lp [-o out.lp] [-name name] <net>
//	gasnet eval [-tol 1e-6] <net> <point.yaml>
//	gasnet generate [-topology path|ring|star|grid|random] [-n N] [-rows R -cols C] [-p P] [-o file]
//	gasnet convert <in> <out>
//
// Snapshot formats follow the file extension (.yaml, .json, .msgpack, with
// an optional .zst suffix). Defaults come from GASNET_* variables and .env.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gasnet/builder"
	"github.com/katalvlaran/gasnet/internal/config"
	"github.com/katalvlaran/gasnet/internal/logging"
	"github.com/katalvlaran/gasnet/model"
	"github.com/katalvlaran/gasnet/network"
	"github.com/katalvlaran/gasnet/snapshot"
)

var errUsage = errors.New("usage: gasnet <inspect|lp|eval|generate|convert> [flags] args")

func main() {
	cfg, log, err := setup()
	ctx := logging.ContextWithLogger(context.Background(), log)
	if err != nil {
		log.Error(ctx, "bad configuration", logging.Err(err))
		os.Exit(2)
	}

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		log.Error(ctx, "gasnet failed", logging.Err(err))
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// setup loads the configuration from files (".env" when none) and the
// environment. When that fails the returned logger still honours
// GASNET_LOG_LEVEL and GASNET_LOG_FORMAT so the error can be reported.
func setup(files ...string) (*config.Config, logging.Logger, error) {
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, logging.NewFromEnv(), err
	}

	return cfg, logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}), nil
}

// run dispatches args[0] to its subcommand. Results go to stdout,
// diagnostics to the context logger.
func run(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	log := logging.FromContext(ctx).With(logging.String("cmd", cmd))
	ctx = logging.ContextWithLogger(ctx, log)

	switch cmd {
	case "inspect":
		return runInspect(ctx, rest, stdout)
	case "lp":
		return runLP(ctx, rest, stdout)
	case "eval":
		return runEval(ctx, rest, stdout)
	case "generate":
		return runGenerate(ctx, cfg, rest, stdout)
	case "convert":
		return runConvert(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runInspect(ctx context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet("inspect")
	showMatrix := fs.Bool("matrix", false, "print the node-edge incidence matrix")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("inspect needs one snapshot: %w", errUsage)
	}

	net, err := snapshot.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	uninit := make([]string, 0)
	for _, a := range net.Uninitialized() {
		uninit = append(uninit, a.String())
	}
	logging.FromContext(ctx).Debug(ctx, "loaded",
		logging.String("path", fs.Arg(0)), logging.Strings("uninitialized", uninit))
	comps := net.Components()
	if len(comps) > 1 {
		logging.FromContext(ctx).Warn(ctx, "network is not connected", logging.Int("components", len(comps)))
	}

	fmt.Fprintf(stdout, "nodes: %d\n", net.NodeCount())
	fmt.Fprintf(stdout, "edges: %d (pipes %d, compressors %d)\n",
		net.EdgeCount(), len(net.Pipes()), len(net.Compressors()))
	fmt.Fprintf(stdout, "components: %d\n", len(comps))
	fmt.Fprintf(stdout, "uninitialized: %v\n", uninit)
	if cc, err := net.CompressionCost(); err == nil {
		fmt.Fprintf(stdout, "compression cost: %g\n", cc)
	}
	if *showMatrix {
		fmt.Fprint(stdout, net.IncidenceMatrix().String())
	}

	return nil
}

func runLP(ctx context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet("lp")
	out := fs.String("o", "", "write the LP file here instead of stdout")
	name := fs.String("name", "", "problem name in the LP header")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("lp needs one snapshot: %w", errUsage)
	}

	net, err := snapshot.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	var opts []model.Option
	if *name != "" {
		opts = append(opts, model.WithName(*name))
	}
	prog, err := model.Build(net, opts...)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Info(ctx, "program built",
		logging.Int("vars", len(prog.Vars())), logging.Int("rows", len(prog.Rows())))

	if *out == "" {
		return prog.WriteLP(stdout)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := prog.WriteLP(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// runEval scores a candidate point, given as a YAML map of variable name to
// value; variables it omits are zero. It also prints Aᵀπ per edge and the
// A·φ net outflow per node at that point.
func runEval(ctx context.Context, args []string, stdout io.Writer) error {
	fs := newFlagSet("eval")
	tol := fs.Float64("tol", 1e-6, "violation tolerance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("eval needs a snapshot and a point: %w", errUsage)
	}

	net, err := snapshot.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	prog, err := model.Build(net)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}
	var point map[string]float64
	if err := yaml.Unmarshal(raw, &point); err != nil {
		return fmt.Errorf("point %s: %w", fs.Arg(1), err)
	}

	x := make([]float64, len(prog.Vars()))
	names := make([]string, 0, len(point))
	for k := range point {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		i, ok := prog.VarIndex(k)
		if !ok {
			logging.FromContext(ctx).Warn(ctx, "unknown variable ignored", logging.String("var", k))
			continue
		}
		x[i] = point[k]
	}

	obj, err := prog.Value(x)
	if err != nil {
		return err
	}
	viol, err := prog.Violations(x, *tol)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug(ctx, "evaluated",
		logging.Float("objective", obj), logging.Float("tol", *tol), logging.Any("violations", viol))

	pi := make(map[network.NodeID]float64, net.NodeCount())
	for _, id := range net.Nodes() {
		if i, ok := prog.VarIndex(fmt.Sprintf("pi(%d)", id)); ok {
			pi[id] = x[i]
		}
	}
	phi := make(map[network.EdgeID]float64, net.EdgeCount())
	for _, e := range net.Edges() {
		if j, ok := prog.VarIndex(fmt.Sprintf("phi(%d)", e.ID)); ok {
			phi[e.ID] = x[j]
		}
	}
	drops, err := model.PressureDrops(net, pi)
	if err != nil {
		return err
	}
	outflow, err := model.NodalBalance(net, phi)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "objective: %g\n", obj)
	fmt.Fprintf(stdout, "violations: %d\n", len(viol))
	for _, v := range viol {
		fmt.Fprintf(stdout, "  %s %g\n", v.Name, v.Amount)
	}
	fmt.Fprintln(stdout, "pressure drops:")
	for _, e := range net.Edges() {
		fmt.Fprintf(stdout, "  %d %g\n", e.ID, drops[e.ID])
	}
	fmt.Fprintln(stdout, "net outflow:")
	for _, id := range net.Nodes() {
		fmt.Fprintf(stdout, "  %d %g\n", id, outflow[id])
	}

	return nil
}

func runGenerate(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	fs := newFlagSet("generate")
	topology := fs.String("topology", "path", "path, ring, star, grid or random")
	n := fs.Int("n", 5, "node count for path, ring, star and random")
	rows := fs.Int("rows", 3, "grid rows")
	cols := fs.Int("cols", 3, "grid columns")
	p := fs.Float64("p", 0.3, "edge probability for random")
	every := fs.Int("compressor-every", cfg.CompressorEvery, "make every k-th edge a compressor")
	seed := fs.Int64("seed", cfg.Seed, "RNG seed for random")
	out := fs.String("o", "", "output snapshot (default <out-dir>/<topology><ext>)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *every < 0 {
		return fmt.Errorf("compressor-every must be non-negative: %w", errUsage)
	}

	var ctor builder.Constructor
	switch *topology {
	case "path":
		ctor = builder.Path(*n)
	case "ring":
		ctor = builder.Ring(*n)
	case "star":
		ctor = builder.Star(*n)
	case "grid":
		ctor = builder.Grid(*rows, *cols)
	case "random":
		ctor = builder.RandomSparse(*n, *p)
	default:
		return fmt.Errorf("unknown topology %q: %w", *topology, errUsage)
	}

	net, err := builder.Build([]builder.Option{
		builder.WithCompressorEvery(*every),
		builder.WithSeed(*seed),
		builder.WithProfile(builder.DefaultProfile()),
	}, ctor)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = filepath.Join(cfg.OutDir, *topology+cfg.Extension())
	}
	if err := snapshot.Save(path, net); err != nil {
		return err
	}
	logging.FromContext(ctx).Info(ctx, "generated",
		logging.String("path", path), logging.Int("nodes", net.NodeCount()), logging.Int("edges", net.EdgeCount()))
	fmt.Fprintln(stdout, path)

	return nil
}

func runConvert(ctx context.Context, args []string) error {
	fs := newFlagSet("convert")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("convert needs an input and an output: %w", errUsage)
	}

	net, err := snapshot.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if err := snapshot.Save(fs.Arg(1), net); err != nil {
		return err
	}
	logging.FromContext(ctx).Info(ctx, "converted",
		logging.String("from", fs.Arg(0)), logging.String("to", fs.Arg(1)))

	return nil
}
