package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	wide "github.com/copperbits/go-wide"
)

// Run using
//  go run ./cmd/widecalc --bits 256 <command> <x> <y>

var (
	bitsFlag = cli.UintFlag{
		Name:  "bits",
		Usage: "width of the operands in bits",
		Value: 256,
	}
	baseFlag = cli.IntFlag{
		Name:  "base",
		Usage: "input and output base (10 or 16)",
		Value: 10,
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "widecalc",
		Usage: "fixed-width unsigned integer calculator",
		Flags: []cli.Flag{
			&bitsFlag,
			&baseFlag,
		},
		Commands: []*cli.Command{
			command("add", "x + y, wrapped to the width"),
			command("sub", "x - y, wrapped to the width"),
			command("mul", "x * y, wrapped to the width"),
			command("div", "quotient of x / y"),
			command("mod", "remainder of x / y"),
			command("cmp", "compare x and y: less, equal or greater"),
		},
	}
}

func command(name, usage string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<x> <y>",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 2 {
				return fmt.Errorf("%s expects two operands, got %d", name, ctx.NArg())
			}

			bits := ctx.Uint("bits")
			if bits == 0 || bits > wide.MaxBits {
				return fmt.Errorf("unsupported width %d, must be in [1, %d]", bits, wide.MaxBits)
			}
			base := ctx.Int("base")
			if base != 10 && base != 16 {
				return fmt.Errorf("unsupported base %d, must be 10 or 16", base)
			}

			x, err := wide.FromString(bits, ctx.Args().Get(0), base)
			if err != nil {
				return err
			}
			y, err := wide.FromString(bits, ctx.Args().Get(1), base)
			if err != nil {
				return err
			}

			out, err := eval(name, x, y, base)
			if err != nil {
				return err
			}
			fmt.Fprintln(ctx.App.Writer, out)
			return nil
		},
	}
}

// eval applies the named operator to x and y and renders the result in the
// given base.
func eval(op string, x, y wide.Uint, base int) (string, error) {
	switch op {
	case "add":
		return x.Add(y).Text(base), nil
	case "sub":
		return x.Sub(y).Text(base), nil
	case "mul":
		return x.Mul(y).Text(base), nil
	case "div", "mod":
		if y.IsZero() {
			return "", wide.ErrDivideByZero
		}
		q, r := x.QuoRem(y)
		if op == "div" {
			return q.Text(base), nil
		}
		return r.Text(base), nil
	case "cmp":
		switch x.Cmp(y) {
		case -1:
			return "less", nil
		case 1:
			return "greater", nil
		default:
			return "equal", nil
		}
	default:
		return "", fmt.Errorf("unknown operator %q", op)
	}
}
