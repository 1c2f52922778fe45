package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/fundamentals/backend/cpu"
	"github.com/born-ml/fundamentals/internal/config"
	"github.com/born-ml/fundamentals/tensor"
)

type exercise struct {
	name string
	run  func(gen *tensor.Generator, b *cpu.Backend, w io.Writer) error
}

// runExercises works through the classic tensor fundamentals exercises:
// random matrices, matrix products, seeding, device placement, reductions
// and squeezing.
func runExercises(args []string, cfg config.Config, logger *slog.Logger, w io.Writer) error {
	fs := flag.NewFlagSet("exercises", flag.ContinueOnError)
	fs.SetOutput(w)
	seed := fs.Int64("seed", cfg.Seed, "generator seed")
	device := fs.String("device", cfg.Device, "device name or auto")
	if err := fs.Parse(args); err != nil {
		return err
	}
	dev, err := resolveDevice(*device, logger)
	if err != nil {
		return err
	}
	gen, err := tensor.NewGenerator(*seed)
	if err != nil {
		return err
	}
	backend := cpu.New(cpu.WithWorkers(cfg.Workers))

	exercises := []exercise{
		{"random 7x7 times transposed 1x7", matmulTransposed},
		{"seeded repeat", seededRepeat},
		{"device placement", placeOn(dev)},
		{"min, max, argmin, argmax", reductions},
		{"squeeze 1x1x1x10", squeeze},
	}
	for i, ex := range exercises {
		logger.Info("exercise", "n", i+1, "name", ex.name)
		fmt.Fprintf(w, "== %d. %s\n", i+1, ex.name)
		if err := ex.run(gen, backend, w); err != nil {
			return fmt.Errorf("exercise %q: %w", ex.name, err)
		}
	}
	return nil
}

func matmulTransposed(gen *tensor.Generator, b *cpu.Backend, w io.Writer) error {
	x, err := tensor.Uniform(gen, tensor.Shape{7, 7}, b)
	if err != nil {
		return err
	}
	y, err := tensor.Uniform(gen, tensor.Shape{1, 7}, b)
	if err != nil {
		return err
	}
	if _, err := x.MatMul(y); err != nil {
		fmt.Fprintf(w, "%v @ %v fails: %v\n", x.Shape(), y.Shape(), err)
	}
	z, err := x.MatMul(y.T())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v @ %v -> %v\n", x.Shape(), y.T().Shape(), z.Shape())
	printRows(w, z)
	return nil
}

func seededRepeat(gen *tensor.Generator, b *cpu.Backend, w io.Writer) error {
	if err := gen.ManualSeed(0); err != nil {
		return err
	}
	x, err := tensor.Uniform(gen, tensor.Shape{7, 7}, b)
	if err != nil {
		return err
	}
	if err := gen.ManualSeed(0); err != nil {
		return err
	}
	y, err := tensor.Uniform(gen, tensor.Shape{7, 7}, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "seed 0 twice, identical: %t\n", x.Equal(y))
	return nil
}

func placeOn(dev tensor.Device) func(*tensor.Generator, *cpu.Backend, io.Writer) error {
	return func(gen *tensor.Generator, b *cpu.Backend, w io.Writer) error {
		if err := gen.ManualSeed(1234); err != nil {
			return err
		}
		x, err := tensor.Uniform(gen, tensor.Shape{2, 3}, b)
		if err != nil {
			return err
		}
		y, err := x.To(dev)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", y)
		return nil
	}
}

func reductions(gen *tensor.Generator, b *cpu.Backend, w io.Writer) error {
	if err := gen.ManualSeed(1234); err != nil {
		return err
	}
	x, err := tensor.Uniform(gen, tensor.Shape{2, 3}, b)
	if err != nil {
		return err
	}
	y, err := tensor.Uniform(gen, tensor.Shape{2, 3}, b)
	if err != nil {
		return err
	}
	z, err := x.MatMul(y.T())
	if err != nil {
		return err
	}
	printRows(w, z)

	lo, err := z.Min()
	if err != nil {
		return err
	}
	hi, err := z.Max()
	if err != nil {
		return err
	}
	argmin, err := z.Argmin()
	if err != nil {
		return err
	}
	argmax, err := z.Argmax()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "min %v (index %d), max %v (index %d)\n", lo.Item(), argmin.Item(), hi.Item(), argmax.Item())
	return nil
}

func squeeze(gen *tensor.Generator, b *cpu.Backend, w io.Writer) error {
	if err := gen.ManualSeed(7); err != nil {
		return err
	}
	x, err := tensor.Uniform(gen, tensor.Shape{1, 1, 1, 10}, b)
	if err != nil {
		return err
	}
	y, err := x.Squeeze()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v -> %v\n", x.Shape(), y.Shape())
	printRows(w, y)
	return nil
}
