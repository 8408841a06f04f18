package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"perceptron/internal/model"
	"perceptron/internal/perceptron"
	"perceptron/internal/storage"
)

func (e *env) weightsCommand() *cli.Command {
	nameFlag := &cli.StringFlag{Name: "name", Usage: "weight set name"}
	return &cli.Command{
		Name:  "weights",
		Usage: "manage stored weight sets",
		Subcommands: []*cli.Command{
			{
				Name:   "save",
				Usage:  "store weights read from a file or drawn at random",
				Action: e.weightsSaveAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "weight set name; generated when empty"},
					&cli.StringFlag{Name: "from", Usage: "weight file to import"},
					&cli.IntFlag{Name: "inputs", Aliases: []string{"n"}, Usage: "number of random weights"},
					&cli.Int64Flag{Name: "seed", Usage: "random seed"},
				},
			},
			{
				Name:   "show",
				Usage:  "print a stored weight set",
				Action: e.weightsShowAction,
				Flags:  []cli.Flag{nameFlag},
			},
			{
				Name:   "list",
				Usage:  "list stored weight set names",
				Action: e.weightsListAction,
			},
			{
				Name:   "delete",
				Usage:  "remove a stored weight set",
				Action: e.weightsDeleteAction,
				Flags:  []cli.Flag{nameFlag},
			},
			{
				Name:   "export",
				Usage:  "write a stored weight set as a weight file",
				Action: e.weightsExportAction,
				Flags: []cli.Flag{
					nameFlag,
					&cli.StringFlag{Name: "out", Usage: "output weight file"},
				},
			},
		},
	}
}

func (e *env) weightsSaveAction(c *cli.Context) error {
	weights, err := weightsToSave(c)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(c)
	if err != nil {
		return err
	}
	defer closeStore()

	set := storage.NewWeightSet(c.String("name"), weights)
	if err := store.SaveWeightSet(c.Context, set); err != nil {
		return err
	}
	e.log.Debug().Str("name", set.Name).Int("count", set.Count).Str("store", c.String("store")).Msg("weight set saved")
	fmt.Fprintf(e.stdout, "saved weight set %s count=%d\n", set.Name, set.Count)
	return nil
}

func weightsToSave(c *cli.Context) ([]float64, error) {
	if from := c.String("from"); from != "" {
		line, ok, err := perceptron.FileSource(from).WeightLine(c.Context)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("weight file %s is missing or unreadable", from)
		}
		return perceptron.ParseWeightLine(line)
	}

	var seed *int64
	if c.IsSet("seed") {
		s := c.Int64("seed")
		seed = &s
	}
	shell, err := perceptron.New(c.Int("inputs"), seededRNG(seed))
	if err != nil {
		return nil, fmt.Errorf("random weights need --inputs: %w", err)
	}
	return shell.Weights(), nil
}

func (e *env) weightsShowAction(c *cli.Context) error {
	store, closeStore, err := openStore(c)
	if err != nil {
		return err
	}
	defer closeStore()

	set, err := getWeightSet(c, store)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "name=%s count=%d weights=%s\n", set.Name, set.Count, set.Line)
	return nil
}

func (e *env) weightsListAction(c *cli.Context) error {
	store, closeStore, err := openStore(c)
	if err != nil {
		return err
	}
	defer closeStore()

	names, err := store.ListWeightSets(c.Context)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(e.stdout, name)
	}
	return nil
}

func (e *env) weightsDeleteAction(c *cli.Context) error {
	name := c.String("name")
	if name == "" {
		return errors.New("--name is required")
	}
	store, closeStore, err := openStore(c)
	if err != nil {
		return err
	}
	defer closeStore()

	deleted, err := store.DeleteWeightSet(c.Context, name)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("weight set not found: %s", name)
	}
	fmt.Fprintf(e.stdout, "deleted weight set %s\n", name)
	return nil
}

func (e *env) weightsExportAction(c *cli.Context) error {
	out := c.String("out")
	if out == "" {
		return errors.New("--out is required")
	}
	store, closeStore, err := openStore(c)
	if err != nil {
		return err
	}
	defer closeStore()

	set, err := getWeightSet(c, store)
	if err != nil {
		return err
	}
	if _, err := storage.Weights(set); err != nil {
		return err
	}
	if err := os.WriteFile(out, []byte(set.Line+"\n"), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "exported weight set %s to %s\n", set.Name, out)
	return nil
}

func getWeightSet(c *cli.Context, store storage.Store) (model.WeightSet, error) {
	name := c.String("name")
	if name == "" {
		return model.WeightSet{}, errors.New("--name is required")
	}
	set, ok, err := store.GetWeightSet(c.Context, name)
	if err != nil {
		return model.WeightSet{}, err
	}
	if !ok {
		return model.WeightSet{}, fmt.Errorf("weight set not found: %s", name)
	}
	return set, nil
}
