// Command biguint evaluates a single operation on fixed-width unsigned
// integers and prints the result.
//
//	biguint [OPTIONS] <op> <operand>...
//
// The container is --bits wide and made of --width bit digits. Operands are
// read in --radix; the result is written in --out-radix, which defaults to
// --radix. Flags raised by the operation are reported on stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/shabbyrobe/go-biguint"
	"github.com/shabbyrobe/go-biguint/word"
)

type config struct {
	Width    int  `short:"w" long:"width" default:"64" description:"digit width in bits (one of: 8, 16, 32, 64, 128)"`
	Bits     int  `short:"b" long:"bits" default:"256" description:"total width in bits; must be width times a power of two up to 512"`
	Radix    int  `short:"r" long:"radix" default:"10" description:"radix of the operands (2 to 62)"`
	OutRadix int  `short:"o" long:"out-radix" description:"radix of the result (defaults to --radix)"`
	Reps     int  `long:"reps" default:"10" description:"Miller-Rabin witnesses to use above 64 bits"`
	Dump     bool `long:"dump" description:"dump the result's digits"`
	Verbose  bool `short:"v" long:"verbose" description:"log each step"`
}

const usage = "[OPTIONS] <op> <operand>..."

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = usage
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return fmt.Errorf("biguint: missing op; usage: %s", usage)
	}
	if cfg.OutRadix == 0 {
		cfg.OutRadix = cfg.Radix
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	newCalc, ok := calcs[calcKey{cfg.Width, cfg.Bits}]
	if !ok {
		return fmt.Errorf("biguint: unsupported width %d and bits %d; supported widths are %s",
			cfg.Width, cfg.Bits, supportedWidths())
	}

	log.Debug().
		Int("width", cfg.Width).
		Int("bits", cfg.Bits).
		Str("op", rest[0]).
		Strs("operands", rest[1:]).
		Msg("evaluating")

	return newCalc(&cfg, log, stdout).eval(rest[0], rest[1:])
}

func supportedWidths() string {
	seen := map[int]bool{}
	var widths []int
	for k := range calcs {
		if !seen[k.width] {
			seen[k.width] = true
			widths = append(widths, k.width)
		}
	}
	sort.Ints(widths)
	out := make([]string, len(widths))
	for i, w := range widths {
		out[i] = strconv.Itoa(w)
	}
	return strings.Join(out, ", ")
}

type calcKey struct{ width, bits int }

type evaluator interface {
	eval(op string, args []string) error
}

var calcs = map[calcKey]func(cfg *config, log zerolog.Logger, out io.Writer) evaluator{}

func init() {
	registerWidth[word.U8]()
	registerWidth[word.U16]()
	registerWidth[word.U32]()
	registerWidth[word.U64]()
	registerWidth[word.U128]()
}

func registerWidth[W word.Word[W]]() {
	register[W, biguint.D1]()
	register[W, biguint.D2]()
	register[W, biguint.D4]()
	register[W, biguint.D8]()
	register[W, biguint.D16]()
	register[W, biguint.D32]()
	register[W, biguint.D64]()
	register[W, biguint.D128]()
	register[W, biguint.D256]()
	register[W, biguint.D512]()
}

func register[W word.Word[W], S biguint.Size]() {
	var w W
	var s S
	key := calcKey{int(w.Bits()), int(w.Bits()) * s.Digits()}
	calcs[key] = func(cfg *config, log zerolog.Logger, out io.Writer) evaluator {
		return &calc[W, S]{cfg: cfg, log: log, out: out}
	}
}
