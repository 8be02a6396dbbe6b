package biguint

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/shabbyrobe/go-biguint/word"
)

type fuzzOp string
type fuzzType string

// This is the equivalent of passing -biguint.fuzziter=1000 to 'go test':
const fuzzDefaultIterations = 1000

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-biguint.fuzzop=add -biguint.fuzzop=sub', or
// you can use the short form '-biguint.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAdd     fuzzOp = "add"
	fuzzAnd     fuzzOp = "and"
	fuzzBitLen  fuzzOp = "bitlen"
	fuzzCmp     fuzzOp = "cmp"
	fuzzDec     fuzzOp = "dec"
	fuzzDiv     fuzzOp = "div"
	fuzzDivRem  fuzzOp = "divrem"
	fuzzInc     fuzzOp = "inc"
	fuzzIRoot   fuzzOp = "iroot"
	fuzzISqrt   fuzzOp = "isqrt"
	fuzzIsPrime fuzzOp = "isprime"
	fuzzLsh     fuzzOp = "lsh"
	fuzzModAdd  fuzzOp = "modadd"
	fuzzModMul  fuzzOp = "modmul"
	fuzzModPow  fuzzOp = "modpow"
	fuzzModSub  fuzzOp = "modsub"
	fuzzMul     fuzzOp = "mul"
	fuzzNot     fuzzOp = "not"
	fuzzOr      fuzzOp = "or"
	fuzzRem     fuzzOp = "rem"
	fuzzRsh     fuzzOp = "rsh"
	fuzzString  fuzzOp = "string"
	fuzzSub     fuzzOp = "sub"
	fuzzXor     fuzzOp = "xor"
)

// These types are all enabled by default. Each has its own word width; the
// digit counts are chosen so each is 128 or 256 bits wide.
const (
	fuzzTypeU8x16  fuzzType = "u8x16"
	fuzzTypeU16x8  fuzzType = "u16x8"
	fuzzTypeU32x8  fuzzType = "u32x8"
	fuzzTypeU64x4  fuzzType = "u64x4"
	fuzzTypeU128x2 fuzzType = "u128x2"
)

var allFuzzTypes = []fuzzType{fuzzTypeU8x16, fuzzTypeU16x8, fuzzTypeU32x8, fuzzTypeU64x4, fuzzTypeU128x2}

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAdd,
	fuzzAnd,
	fuzzBitLen,
	fuzzCmp,
	fuzzDec,
	fuzzDiv,
	fuzzDivRem,
	fuzzInc,
	fuzzIRoot,
	fuzzISqrt,
	fuzzIsPrime,
	fuzzLsh,
	fuzzModAdd,
	fuzzModMul,
	fuzzModPow,
	fuzzModSub,
	fuzzMul,
	fuzzNot,
	fuzzOr,
	fuzzRem,
	fuzzRsh,
	fuzzString,
	fuzzSub,
	fuzzXor,
}

// NEWOP: update this interface if a new op is added.
type fuzzOps interface {
	Name() string // Not an op

	Add() error
	And() error
	BitLen() error
	Cmp() error
	Dec() error
	Div() error
	DivRem() error
	Inc() error
	IRoot() error
	ISqrt() error
	IsPrime() error
	Lsh() error
	ModAdd() error
	ModMul() error
	ModPow() error
	ModSub() error
	Mul() error
	Not() error
	Or() error
	Rem() error
	Rsh() error
	String() error
	Sub() error
	Xor() error
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

func (r *rando) Intn(n int) int {
	v := r.rng.Intn(n)
	r.operands = append(r.operands, new(big.Int).SetInt64(int64(v)))
	return v
}

// Big returns a value of at most bits bits. The bit length is uniformly
// distributed so that small values are as likely as large ones.
func (r *rando) Big(bits uint) *big.Int {
	v := new(big.Int)
	n := r.rng.Intn(int(bits) + 1)
	if n > 0 {
		v.Rand(r.rng, new(big.Int).Lsh(big1, uint(n-1)))
		v.SetBit(v, n-1, 1)
	}
	r.operands = append(r.operands, v)
	return v
}

// samesies reports whether the second of a pair of operands should be a copy
// of the first. The chance of two random wide operands being the same is
// otherwise unfathomable.
func (r *rando) samesies() bool {
	const samesiesChance = 0.03
	return r.rng.Float64() < samesiesChance
}

func (r *rando) Bigx2(bits uint) (b1, b2 *big.Int) {
	b1 = r.Big(bits)
	if r.samesies() {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.Big(bits)
	}
	return b1, b2
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -biguint.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	// fuzzTypesActive comes from the -biguint.fuzztype flag, in TestMain:
	var runFuzzTypes = fuzzTypesActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var totalFailures int

	var fuzzTypes []fuzzOps

	for _, ft := range runFuzzTypes {
		switch ft {
		case fuzzTypeU8x16:
			fuzzTypes = append(fuzzTypes, &fuzzBig[word.U8, D16]{name: string(ft), source: source})
		case fuzzTypeU16x8:
			fuzzTypes = append(fuzzTypes, &fuzzBig[word.U16, D8]{name: string(ft), source: source})
		case fuzzTypeU32x8:
			fuzzTypes = append(fuzzTypes, &fuzzBig[word.U32, D8]{name: string(ft), source: source})
		case fuzzTypeU64x4:
			fuzzTypes = append(fuzzTypes, &fuzzBig[word.U64, D4]{name: string(ft), source: source})
		case fuzzTypeU128x2:
			fuzzTypes = append(fuzzTypes, &fuzzBig[word.U128, D2]{name: string(ft), source: source})
		default:
			panic("unknown fuzz type")
		}
	}

	for _, fuzzImpl := range fuzzTypes {
		var failures = make([]int, len(runFuzzOps))

		for opIdx, op := range runFuzzOps {
			for i := 0; i < fuzzIterations; i++ {
				source.Clear()

				if err := op.run(fuzzImpl); err != nil {
					failures[opIdx]++
					t.Logf("%s: %s: %s\n", fuzzImpl.Name(), op.Print(source.Operands()...), err)
				}
			}
		}

		for opIdx, cnt := range failures {
			if cnt > 0 {
				totalFailures += cnt
				t.Logf("impl %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
			}
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) run(f fuzzOps) error {
	// NEWOP: add a new branch here in alphabetical order if a new op is
	// added.
	switch op {
	case fuzzAdd:
		return f.Add()
	case fuzzAnd:
		return f.And()
	case fuzzBitLen:
		return f.BitLen()
	case fuzzCmp:
		return f.Cmp()
	case fuzzDec:
		return f.Dec()
	case fuzzDiv:
		return f.Div()
	case fuzzDivRem:
		return f.DivRem()
	case fuzzInc:
		return f.Inc()
	case fuzzIRoot:
		return f.IRoot()
	case fuzzISqrt:
		return f.ISqrt()
	case fuzzIsPrime:
		return f.IsPrime()
	case fuzzLsh:
		return f.Lsh()
	case fuzzModAdd:
		return f.ModAdd()
	case fuzzModMul:
		return f.ModMul()
	case fuzzModPow:
		return f.ModPow()
	case fuzzModSub:
		return f.ModSub()
	case fuzzMul:
		return f.Mul()
	case fuzzNot:
		return f.Not()
	case fuzzOr:
		return f.Or()
	case fuzzRem:
		return f.Rem()
	case fuzzRsh:
		return f.Rsh()
	case fuzzString:
		return f.String()
	case fuzzSub:
		return f.Sub()
	case fuzzXor:
		return f.Xor()
	default:
		panic(fmt.Errorf("unsupported op %q", op))
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readable format for your op here; this is
	// used for reporting errors and should show the operation, i.e. "2 + 2".
	switch op {
	case fuzzBitLen, fuzzISqrt, fuzzIsPrime:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%d)", s, operands[0])

	case fuzzString:
		return fmt.Sprintf("string(%d, %d)", operands[0], operands[1])

	case fuzzIRoot:
		return fmt.Sprintf("iroot(%d, %d)", operands[0], operands[1])

	case fuzzInc, fuzzDec:
		return fmt.Sprintf("%d%s", operands[0], op.String())

	case fuzzNot:
		return fmt.Sprintf("%s%d", op.String(), operands[0])

	case fuzzModAdd, fuzzModMul, fuzzModPow, fuzzModSub:
		return fmt.Sprintf("%d %s %d mod %d", operands[0], op.String(), operands[1], operands[2])

	case fuzzAdd, fuzzAnd, fuzzCmp, fuzzDiv, fuzzDivRem, fuzzLsh,
		fuzzMul, fuzzOr, fuzzRem, fuzzRsh, fuzzSub, fuzzXor:

		// simple binary case:
		return fmt.Sprintf("%d %s %d", operands[0], op.String(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAdd, fuzzModAdd:
		return "+"
	case fuzzAnd:
		return "&"
	case fuzzBitLen:
		return "bitlen()"
	case fuzzCmp:
		return "<=>"
	case fuzzDec:
		return "--"
	case fuzzDiv:
		return "/"
	case fuzzDivRem:
		return "/%"
	case fuzzInc:
		return "++"
	case fuzzISqrt:
		return "isqrt()"
	case fuzzIsPrime:
		return "isprime()"
	case fuzzLsh:
		return "<<"
	case fuzzMul, fuzzModMul:
		return "*"
	case fuzzModPow:
		return "**"
	case fuzzNot, fuzzXor:
		return "^"
	case fuzzOr:
		return "|"
	case fuzzRem:
		return "%"
	case fuzzRsh:
		return ">>"
	case fuzzSub, fuzzModSub:
		return "-"
	default:
		return string(op)
	}
}

// fuzzBig checks one BigUInt instantiation against math/big. Every operand
// is fresh, so the expected flags are exactly those the op itself causes.
type fuzzBig[W word.Word[W], S Size] struct {
	name   string
	source *rando
}

func (f *fuzzBig[W, S]) Name() string { return f.name }

func (f *fuzzBig[W, S]) bits() uint { return Zero[W, S]().Bits() }

func (f *fuzzBig[W, S]) wrap(b *big.Int) *big.Int {
	return new(big.Int).Mod(b, wrapBig(f.bits()))
}

func (f *fuzzBig[W, S]) x1() (*big.Int, *BigUInt[W, S]) {
	b := f.source.Big(f.bits())
	return b, accFromBigInt[W, S](b)
}

func (f *fuzzBig[W, S]) x2() (b1, b2 *big.Int, u1, u2 *BigUInt[W, S]) {
	b1, b2 = f.source.Bigx2(f.bits())
	return b1, b2, accFromBigInt[W, S](b1), accFromBigInt[W, S](b2)
}

func checkAll(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *fuzzBig[W, S]) Add() error {
	b1, b2, u1, u2 := f.x2()
	rb := new(big.Int).Add(b1, b2)
	var want Flag
	if rb.Cmp(wrapBig(f.bits())) >= 0 {
		want = Overflow
	}
	ru := u1.Add(u2)
	return checkAll(checkEqualBig(ru, f.wrap(rb)), checkFlags(ru, want))
}

func (f *fuzzBig[W, S]) Sub() error {
	b1, b2, u1, u2 := f.x2()
	rb := new(big.Int).Sub(b1, b2)
	var want Flag
	if rb.Sign() < 0 {
		want = Underflow
	}
	ru := u1.Sub(u2)
	return checkAll(checkEqualBig(ru, f.wrap(rb)), checkFlags(ru, want))
}

func (f *fuzzBig[W, S]) Mul() error {
	b1, b2, u1, u2 := f.x2()
	rb := new(big.Int).Mul(b1, b2)
	var want Flag
	if rb.Cmp(wrapBig(f.bits())) >= 0 {
		want = Untrustable
	}
	ru := u1.Mul(u2)
	return checkAll(checkEqualBig(ru, f.wrap(rb)), checkFlags(ru, want))
}

func (f *fuzzBig[W, S]) Div() error {
	b1, b2, u1, u2 := f.x2()
	ru := u1.Div(u2)
	if b2.Sign() == 0 {
		return checkAll(checkEqualBool(ru.IsMax(), true), checkFlags(ru, Infinity|DividedByZero))
	}
	return checkAll(checkEqualBig(ru, new(big.Int).Quo(b1, b2)), checkFlags(ru, 0))
}

func (f *fuzzBig[W, S]) Rem() error {
	b1, b2, u1, u2 := f.x2()
	ru := u1.Rem(u2)
	if b2.Sign() == 0 {
		return checkAll(checkEqualBool(ru.IsZero(), true), checkFlags(ru, DividedByZero))
	}
	return checkAll(checkEqualBig(ru, new(big.Int).Rem(b1, b2)), checkFlags(ru, 0))
}

func (f *fuzzBig[W, S]) DivRem() error {
	b1, b2, u1, u2 := f.x2()
	if b2.Sign() == 0 {
		return nil // Just skip this iteration, Div and Rem cover it.
	}
	rq, rr := new(big.Int).QuoRem(b1, b2, new(big.Int))
	uq, ur := u1.DivRem(u2)
	return checkAll(checkEqualBig(uq, rq), checkEqualBig(ur, rr))
}

func (f *fuzzBig[W, S]) Inc() error {
	b1, u1 := f.x1()
	rb := new(big.Int).Add(b1, big1)
	var want Flag
	if rb.Cmp(wrapBig(f.bits())) >= 0 {
		want = Overflow
	}
	ru := u1.Inc()
	return checkAll(checkEqualBig(ru, f.wrap(rb)), checkFlags(ru, want))
}

func (f *fuzzBig[W, S]) Dec() error {
	b1, u1 := f.x1()
	rb := new(big.Int).Sub(b1, big1)
	var want Flag
	if rb.Sign() < 0 {
		want = Underflow
	}
	ru := u1.Dec()
	return checkAll(checkEqualBig(ru, f.wrap(rb)), checkFlags(ru, want))
}

func (f *fuzzBig[W, S]) Lsh() error {
	b1, u1 := f.x1()
	by := f.source.Intn(int(f.bits() + f.bits()/2))
	rb := new(big.Int).Lsh(b1, uint(by))
	var want Flag
	if rb.Cmp(wrapBig(f.bits())) >= 0 {
		want = Overflow
	}
	ru := u1.Lsh(by)
	return checkAll(checkEqualBig(ru, f.wrap(rb)), checkFlags(ru, want))
}

func (f *fuzzBig[W, S]) Rsh() error {
	b1, u1 := f.x1()
	by := f.source.Intn(int(f.bits() + f.bits()/2))
	rb := new(big.Int).Rsh(b1, uint(by))
	var want Flag
	if new(big.Int).Lsh(rb, uint(by)).Cmp(b1) != 0 {
		want = Underflow
	}
	ru := u1.Rsh(by)
	return checkAll(checkEqualBig(ru, rb), checkFlags(ru, want))
}

func (f *fuzzBig[W, S]) And() error {
	b1, b2, u1, u2 := f.x2()
	return checkEqualBig(u1.And(u2), new(big.Int).And(b1, b2))
}

func (f *fuzzBig[W, S]) Or() error {
	b1, b2, u1, u2 := f.x2()
	return checkEqualBig(u1.Or(u2), new(big.Int).Or(b1, b2))
}

func (f *fuzzBig[W, S]) Xor() error {
	b1, b2, u1, u2 := f.x2()
	return checkEqualBig(u1.Xor(u2), new(big.Int).Xor(b1, b2))
}

func (f *fuzzBig[W, S]) Not() error {
	b1, u1 := f.x1()
	rb := new(big.Int).Sub(wrapBig(f.bits()), big1)
	rb.Sub(rb, b1)
	return checkEqualBig(u1.Not(), rb)
}

func (f *fuzzBig[W, S]) Cmp() error {
	b1, b2, u1, u2 := f.x2()
	return checkEqualInt(u1.Cmp(u2), b1.Cmp(b2))
}

func (f *fuzzBig[W, S]) BitLen() error {
	b1, u1 := f.x1()
	return checkEqualInt(int(u1.BitLen()), b1.BitLen())
}

// swapCase converts between math/big's digit alphabet (0-9a-zA-Z) and ours
// (0-9A-Za-z).
func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

func (f *fuzzBig[W, S]) String() error {
	b1, u1 := f.x1()
	radix := MinRadix + f.source.Intn(MaxRadix-MinRadix+1)

	s, err := u1.ToString(radix)
	if err != nil {
		return err
	}
	if expected := swapCase(b1.Text(radix)); s != expected {
		return fmt.Errorf("biguint(%s) != big(%s)", s, expected)
	}

	back, err := FromString[W, S](s, radix)
	if err != nil {
		return err
	}
	return checkAll(checkEqualBig(back, b1), checkFlags(back, 0))
}

func (f *fuzzBig[W, S]) modOperands() (b1, b2, bm *big.Int, u1, u2, um *BigUInt[W, S]) {
	b1, b2, u1, u2 = f.x2()
	bm, um = f.x1()
	return
}

func (f *fuzzBig[W, S]) checkMod(ru *BigUInt[W, S], rb, bm *big.Int) error {
	if bm.Sign() == 0 {
		return checkAll(checkEqualBool(ru.IsZero(), true), checkFlags(ru, DividedByZero))
	}
	return checkAll(checkEqualBig(ru, rb.Mod(rb, bm)), checkFlags(ru, 0))
}

func (f *fuzzBig[W, S]) ModAdd() error {
	b1, b2, bm, u1, u2, um := f.modOperands()
	return f.checkMod(u1.ModularAdd(u2, um), new(big.Int).Add(b1, b2), bm)
}

func (f *fuzzBig[W, S]) ModSub() error {
	b1, b2, bm, u1, u2, um := f.modOperands()
	return f.checkMod(u1.ModularSub(u2, um), new(big.Int).Sub(b1, b2), bm)
}

func (f *fuzzBig[W, S]) ModMul() error {
	b1, b2, bm, u1, u2, um := f.modOperands()
	return f.checkMod(u1.ModularMul(u2, um), new(big.Int).Mul(b1, b2), bm)
}

func (f *fuzzBig[W, S]) ModPow() error {
	b1, u1 := f.x1()

	// Full-width exponents are slow with double-and-add multiplication and
	// exercise nothing extra.
	be := f.source.Big(16)
	ue := accFromBigInt[W, S](be)
	bm, um := f.x1()

	ru := u1.ModularPow(ue, um)
	if bm.Sign() == 0 {
		return checkAll(checkEqualBool(ru.IsZero(), true), checkFlags(ru, DividedByZero))
	}
	return checkAll(checkEqualBig(ru, new(big.Int).Exp(b1, be, bm)), checkFlags(ru, 0))
}

func (f *fuzzBig[W, S]) ISqrt() error {
	b1, u1 := f.x1()
	return checkEqualBig(u1.ISqrt(), new(big.Int).Sqrt(b1))
}

func (f *fuzzBig[W, S]) IRoot() error {
	b1, u1 := f.x1()
	exp := 2 + f.source.Intn(10)
	r := u1.IRoot(uint(exp)).AsBigInt()

	be := big.NewInt(int64(exp))
	lo := new(big.Int).Exp(r, be, nil)
	hi := new(big.Int).Exp(new(big.Int).Add(r, big1), be, nil)
	if lo.Cmp(b1) > 0 || hi.Cmp(b1) <= 0 {
		return fmt.Errorf("root %s out of range", r)
	}
	return nil
}

func (f *fuzzBig[W, S]) IsPrime() error {
	// Wider candidates cost a full-width modular exponentiation per witness.
	b1 := f.source.Big(80)
	u1 := accFromBigInt[W, S](b1)
	return checkEqualBool(u1.IsPrimeMillerRabin(10), b1.ProbablyPrime(10))
}
