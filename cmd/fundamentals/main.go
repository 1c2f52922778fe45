// Package main provides the fundamentals command line tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/fundamentals/backend/cpu"
	"github.com/born-ml/fundamentals/internal/accel"
	"github.com/born-ml/fundamentals/internal/config"
	"github.com/born-ml/fundamentals/tensor"
	"github.com/x448/float16"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if len(args) == 0 {
		usage(stdout)
		return nil
	}
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "fundamentals %s\n", version)
		return nil
	case "devices":
		return runDevices(stdout)
	case "rand":
		return runRand(args[1:], cfg, logger, stdout)
	case "exercises":
		return runExercises(args[1:], cfg, logger, stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "fundamentals - seeded random tensors and tensor basics")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  devices    List devices and how many of each are present")
	fmt.Fprintln(w, "  rand       Draw a seeded uniform tensor twice (-seed, -shape, -dtype)")
	fmt.Fprintln(w, "  exercises  Run the tensor fundamentals exercises (-seed)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment: FUNDAMENTALS_SEED, FUNDAMENTALS_DEVICE, FUNDAMENTALS_LOG_LEVEL, FUNDAMENTALS_WORKERS")
}

func runDevices(w io.Writer) error {
	for _, d := range []tensor.Device{tensor.CPU, tensor.CUDA, tensor.Vulkan, tensor.Metal, tensor.WebGPU} {
		fmt.Fprintf(w, "%-7s %d\n", d, accel.Count(d))
	}
	fmt.Fprintf(w, "default %s\n", accel.Default())
	return nil
}

// resolveDevice picks the configured device, falling back to CPU when the
// requested accelerator is absent.
func resolveDevice(name string, logger *slog.Logger) (tensor.Device, error) {
	d, err := accel.Resolve(name)
	if errors.Is(err, tensor.ErrDeviceUnavailable) {
		logger.Warn("device unavailable, using CPU", "device", name)
		return tensor.CPU, nil
	}
	return d, err
}

func runRand(args []string, cfg config.Config, logger *slog.Logger, w io.Writer) error {
	fs := flag.NewFlagSet("rand", flag.ContinueOnError)
	fs.SetOutput(w)
	seed := fs.Int64("seed", cfg.Seed, "generator seed")
	shapeFlag := fs.String("shape", "3,4", "comma separated dimensions")
	dtype := fs.String("dtype", "float32", "float32, float64 or float16")
	device := fs.String("device", cfg.Device, "device name or auto")
	if err := fs.Parse(args); err != nil {
		return err
	}

	shape, err := parseShape(*shapeFlag)
	if err != nil {
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
	logger.Debug("drawing", "seed", *seed, "shape", shape, "dtype", *dtype, "device", dev)

	switch *dtype {
	case "float32":
		return drawTwice[float32](gen, *seed, shape, dev, backend, w)
	case "float64":
		return drawTwice[float64](gen, *seed, shape, dev, backend, w)
	case "float16":
		return drawTwice[float16.Float16](gen, *seed, shape, dev, backend, w)
	default:
		return fmt.Errorf("dtype %q: %w", *dtype, tensor.ErrUnsupportedDType)
	}
}

// drawTwice draws a tensor, reseeds, draws again and reports whether the two
// draws match.
func drawTwice[T tensor.DType](gen *tensor.Generator, seed int64, shape tensor.Shape, dev tensor.Device, b *cpu.Backend, w io.Writer) error {
	a, err := tensor.Rand[T](gen, shape, b)
	if err != nil {
		return err
	}
	if err := gen.ManualSeed(seed); err != nil {
		return err
	}
	c, err := tensor.Rand[T](gen, shape, b)
	if err != nil {
		return err
	}
	if a, err = a.To(dev); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", a)
	printRows(w, a)
	fmt.Fprintf(w, "reseeded draw identical: %t\n", a.CPU().Equal(c))
	return nil
}

// printRows writes a tensor one row (last dimension) per line.
func printRows[T tensor.DType, B tensor.Backend](w io.Writer, t *tensor.Tensor[T, B]) {
	vals := t.CPU().Values()
	width := 1
	if t.Dim() > 0 {
		width = t.Shape()[t.Dim()-1]
	}
	for i := 0; i < len(vals); i += width {
		fmt.Fprintln(w, vals[i:i+width])
	}
}

func parseShape(s string) (tensor.Shape, error) {
	parts := strings.Split(s, ",")
	shape := make(tensor.Shape, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", s, err)
		}
		shape = append(shape, d)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("shape %q: %w", s, err)
	}
	return shape, nil
}
