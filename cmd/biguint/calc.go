package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/shabbyrobe/go-biguint"
	"github.com/shabbyrobe/go-biguint/word"
)

// dumpConfig shows digits as their raw Go integers; the default config would
// print each one through its String method instead.
var dumpConfig = spew.ConfigState{Indent: " ", DisableMethods: true}

type calc[W word.Word[W], S biguint.Size] struct {
	cfg *config
	log zerolog.Logger
	out io.Writer
}

func (c *calc[W, S]) eval(op string, args []string) error {
	switch op {
	case "add", "sub", "mul", "div", "rem", "gcd", "lcm", "and", "or", "xor":
		a, b, err := c.operands2(op, args)
		if err != nil {
			return err
		}
		return c.emit(binaryOps[W, S]()[op](a, b))

	case "divrem":
		a, b, err := c.operands2(op, args)
		if err != nil {
			return err
		}
		q, r := a.DivRem(b)
		if err := c.emit(q); err != nil {
			return err
		}
		return c.emit(r)

	case "modadd", "modsub", "modmul", "modpow":
		if len(args) != 3 {
			return fmt.Errorf("biguint: %s takes 3 operands, found %d", op, len(args))
		}
		vs, err := c.parse(args)
		if err != nil {
			return err
		}
		a, b, m := vs[0], vs[1], vs[2]
		var r *biguint.BigUInt[W, S]
		switch op {
		case "modadd":
			r = a.ModularAdd(b, m)
		case "modsub":
			r = a.ModularSub(b, m)
		case "modmul":
			r = a.ModularMul(b, m)
		default:
			r = a.ModularPow(b, m)
		}
		return c.emit(r)

	case "not", "inc", "dec", "isqrt":
		a, err := c.operand1(op, args)
		if err != nil {
			return err
		}
		switch op {
		case "not":
			return c.emit(a.Not())
		case "inc":
			return c.emit(a.Inc())
		case "dec":
			return c.emit(a.Dec())
		default:
			return c.emit(a.ISqrt())
		}

	case "pow", "iroot", "lsh", "rsh":
		if len(args) != 2 {
			return fmt.Errorf("biguint: %s takes a value and an amount, found %d operands", op, len(args))
		}
		a, err := c.parseOne(args[0])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("biguint: %s amount %q: %w", op, args[1], err)
		}
		switch op {
		case "lsh":
			return c.emit(a.Lsh(n))
		case "rsh":
			return c.emit(a.Rsh(n))
		}
		if n < 0 {
			return fmt.Errorf("biguint: %s amount must not be negative, found %d", op, n)
		}
		if op == "pow" {
			return c.emit(a.Pow(uint(n)))
		}
		return c.emit(a.IRoot(uint(n)))

	case "isprime":
		a, err := c.operand1(op, args)
		if err != nil {
			return err
		}
		prime := a.IsPrimeMillerRabin(c.cfg.Reps)
		c.log.Debug().Int("reps", c.cfg.Reps).Bool("prime", prime).Msg("miller-rabin")
		_, err = fmt.Fprintln(c.out, prime)
		return err

	case "bitlen":
		a, err := c.operand1(op, args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, a.BitLen())
		return err

	case "cmp":
		a, b, err := c.operands2(op, args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, a.Cmp(b))
		return err

	default:
		return fmt.Errorf("biguint: unknown op %q", op)
	}
}

func binaryOps[W word.Word[W], S biguint.Size]() map[string]func(a, b *biguint.BigUInt[W, S]) *biguint.BigUInt[W, S] {
	return map[string]func(a, b *biguint.BigUInt[W, S]) *biguint.BigUInt[W, S]{
		"add": (*biguint.BigUInt[W, S]).Add,
		"sub": (*biguint.BigUInt[W, S]).Sub,
		"mul": (*biguint.BigUInt[W, S]).Mul,
		"div": (*biguint.BigUInt[W, S]).Div,
		"rem": (*biguint.BigUInt[W, S]).Rem,
		"gcd": (*biguint.BigUInt[W, S]).Gcd,
		"lcm": (*biguint.BigUInt[W, S]).Lcm,
		"and": (*biguint.BigUInt[W, S]).And,
		"or":  (*biguint.BigUInt[W, S]).Or,
		"xor": (*biguint.BigUInt[W, S]).Xor,
	}
}

func (c *calc[W, S]) operand1(op string, args []string) (*biguint.BigUInt[W, S], error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("biguint: %s takes 1 operand, found %d", op, len(args))
	}
	return c.parseOne(args[0])
}

func (c *calc[W, S]) operands2(op string, args []string) (a, b *biguint.BigUInt[W, S], err error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("biguint: %s takes 2 operands, found %d", op, len(args))
	}
	vs, err := c.parse(args)
	if err != nil {
		return nil, nil, err
	}
	return vs[0], vs[1], nil
}

func (c *calc[W, S]) parse(args []string) ([]*biguint.BigUInt[W, S], error) {
	out := make([]*biguint.BigUInt[W, S], len(args))
	for i, s := range args {
		v, err := c.parseOne(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c *calc[W, S]) parseOne(s string) (*biguint.BigUInt[W, S], error) {
	v, err := biguint.FromString[W, S](s, c.cfg.Radix)
	if err != nil {
		return nil, err
	}
	if v.Flags() != 0 {
		c.log.Warn().Str("operand", s).Stringer("flags", v.Flags()).Msg("operand does not fit")
	}
	return v, nil
}

func (c *calc[W, S]) emit(v *biguint.BigUInt[W, S]) error {
	s, err := v.ToString(c.cfg.OutRadix)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(c.out, s); err != nil {
		return err
	}
	if v.Flags() != 0 {
		c.log.Warn().Stringer("flags", v.Flags()).Msg("result flagged")
	}
	if c.cfg.Dump {
		dumpConfig.Fdump(c.out, v.Digits())
	}
	return nil
}
