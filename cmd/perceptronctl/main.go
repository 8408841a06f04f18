package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"perceptron/internal/perceptron"
	"perceptron/internal/preset"
	"perceptron/internal/storage"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	e := &env{
		stdout: stdout,
		stderr: stderr,
		log:    zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).With().Timestamp().Logger(),
	}
	return e.app().RunContext(ctx, append([]string{"perceptronctl"}, args...))
}

func (e *env) app() *cli.App {
	return &cli.App{
		Name:      "perceptronctl",
		Usage:     "inspect single-layer perceptron inputs and weights",
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "store", Value: storage.DefaultStoreKind(), Usage: "store backend: memory|sqlite"},
			&cli.StringFlag{Name: "db-path", Value: "perceptron.db", Usage: "sqlite database path"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			e.log = e.log.Level(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "build a perceptron, collect and remap inputs, print its state",
				Action: e.renderAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Usage: "YAML or JSON run config"},
					&cli.IntFlag{Name: "inputs", Aliases: []string{"n"}, Usage: "number of inputs"},
					&cli.StringFlag{Name: "weights", Usage: "weight file; first line holds the weights"},
					&cli.StringFlag{Name: "weight-set", Usage: "stored weight set name"},
					&cli.Float64SliceFlag{Name: "values", Usage: "comma separated input values"},
					&cli.StringFlag{Name: "preset", Usage: "named input ranges: " + fmt.Sprint(preset.Names())},
					&cli.BoolFlag{Name: "strict", Usage: "report length and range mismatches as errors"},
					&cli.Int64Flag{Name: "seed", Usage: "random seed for weight initialization"},
				},
			},
			{
				Name:      "arithmetic",
				Usage:     "map a two-operand addition or subtraction onto perceptron inputs",
				ArgsUsage: "A +|- B",
				Action:    e.arithmeticAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "weights", Usage: "weight file; first line holds the weights"},
					&cli.Int64Flag{Name: "seed", Usage: "random seed for weight initialization"},
				},
			},
			{
				Name:      "remap",
				Usage:     "linearly remap a value from one range to another",
				ArgsUsage: "VALUE SRCMIN SRCMAX DSTMIN DSTMAX",
				Action:    e.remapAction,
			},
			e.weightsCommand(),
		},
	}
}

func (e *env) renderAction(c *cli.Context) error {
	cfg := runConfig{}
	if path := c.String("config"); path != "" {
		loaded, err := loadRunConfig(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}
	cfg.applyFlags(c)
	if err := cfg.validate(); err != nil {
		return err
	}

	var store storage.Store
	if cfg.WeightSet != "" {
		opened, closeStore, err := openStore(c)
		if err != nil {
			return err
		}
		defer closeStore()
		store = opened
	}

	shell, err := e.buildShell(c.Context, cfg, store)
	if err != nil {
		return err
	}
	shell.SetStrict(cfg.Strict)

	if len(cfg.Values) > 0 {
		if err := shell.CollectInputs(cfg.Values...); err != nil {
			return err
		}
	}
	switch {
	case cfg.Preset != "":
		p, _ := preset.Lookup(cfg.Preset)
		if err := p.Apply(shell); err != nil {
			return err
		}
	case len(cfg.InputRanges) > 0 || len(cfg.OutputRanges) > 0:
		if err := shell.MapInputPairs(cfg.InputRanges, cfg.OutputRanges); err != nil {
			return err
		}
	}

	fmt.Fprintln(e.stdout, shell)
	return nil
}

func (e *env) buildShell(ctx context.Context, cfg runConfig, store storage.Store) (*perceptron.Shell, error) {
	rng := cfg.rng()
	var (
		shell  *perceptron.Shell
		origin = perceptron.OriginRandom
		source string
		err    error
	)
	switch {
	case cfg.Weights != "":
		source = cfg.Weights
		shell, origin, err = perceptron.NewFromFile(ctx, cfg.Inputs, cfg.Weights, rng)
	case cfg.WeightSet != "":
		source = cfg.WeightSet
		shell, origin, err = perceptron.NewFromSource(ctx, cfg.Inputs, storage.Source{Store: store, Name: cfg.WeightSet}, rng)
	default:
		shell, err = perceptron.New(cfg.Inputs, rng)
	}
	if err != nil {
		return nil, err
	}

	if origin.Fallback() {
		e.log.Warn().Str("source", source).Str("origin", origin.String()).Int("inputs", cfg.Inputs).Msg("weight source skipped, using random weights")
	} else {
		e.log.Debug().Str("source", source).Str("origin", origin.String()).Int("inputs", cfg.Inputs).Msg("weights initialized")
	}
	return shell, nil
}

func (e *env) arithmeticAction(c *cli.Context) error {
	if c.NArg() != 3 {
		return fmt.Errorf("arithmetic expects 3 arguments, got %d", c.NArg())
	}
	a, err := strconv.ParseFloat(c.Args().Get(0), 64)
	if err != nil {
		return fmt.Errorf("operand %q: %w", c.Args().Get(0), err)
	}
	op, err := preset.OperatorCode(c.Args().Get(1))
	if err != nil {
		return err
	}
	b, err := strconv.ParseFloat(c.Args().Get(2), 64)
	if err != nil {
		return fmt.Errorf("operand %q: %w", c.Args().Get(2), err)
	}

	p, _ := preset.Lookup(preset.Arithmetic)
	cfg := runConfig{Inputs: p.Inputs, Weights: c.String("weights")}
	if c.IsSet("seed") {
		seed := c.Int64("seed")
		cfg.Seed = &seed
	}
	shell, err := e.buildShell(c.Context, cfg, nil)
	if err != nil {
		return err
	}
	if err := shell.CollectInputs(a, op, b); err != nil {
		return err
	}
	if err := p.Apply(shell); err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, shell)
	return nil
}

func (e *env) remapAction(c *cli.Context) error {
	if c.NArg() != 5 {
		return fmt.Errorf("remap expects 5 arguments, got %d", c.NArg())
	}
	var v [5]float64
	for i := range v {
		parsed, err := strconv.ParseFloat(c.Args().Get(i), 64)
		if err != nil {
			return fmt.Errorf("argument %d %q: %w", i+1, c.Args().Get(i), err)
		}
		v[i] = parsed
	}
	if v[1] == v[2] {
		e.log.Warn().Float64("min", v[1]).Msg("degenerate source range")
	}
	result := perceptron.RemapLinear(v[0], v[1], v[2], v[3], v[4])
	fmt.Fprintln(e.stdout, strconv.FormatFloat(result, 'g', -1, 64))
	return nil
}

func openStore(c *cli.Context) (storage.Store, func(), error) {
	store, err := storage.NewStore(c.String("store"), c.String("db-path"))
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		_ = storage.CloseIfSupported(store)
	}
	if err := store.Init(c.Context); err != nil {
		closeStore()
		return nil, nil, err
	}
	return store, closeStore, nil
}

func seededRNG(seed *int64) *rand.Rand {
	if seed == nil {
		return nil
	}
	return rand.New(rand.NewSource(*seed))
}
