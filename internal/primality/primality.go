// Package primality holds the witness selection policy shared by the word
// and digit-array Miller-Rabin implementations.
package primality

// TrialDivisionLimit is the bound below which primality is decided by trial
// division rather than Miller-Rabin rounds.
const TrialDivisionLimit = 10000

// SmallPrimes covers every prime up to the square root of TrialDivisionLimit.
var SmallPrimes = [...]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// Witnesses32 is deterministic for every n < 4,759,123,141.
var Witnesses32 = [...]uint64{2, 7, 61}

// Witnesses64 is deterministic for every n < 2^64 (Jim Sinclair's set).
var Witnesses64 = [...]uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

// IsPrimeTrial reports whether v is prime by trial division. It is only
// exact for v < TrialDivisionLimit.
func IsPrimeTrial(v uint64) bool {
	if v < 2 {
		return false
	}
	for _, p := range SmallPrimes {
		if p*p > v {
			break
		}
		if v%p == 0 {
			return v == p
		}
	}
	return true
}

// Witnesses returns the witnesses to test for a candidate. fits32 and fits64
// report whether the candidate fits in 32 or 64 bits. Above 64 bits, the
// 64-bit set is extended with 3, 4, 5, ... until repetition witnesses have
// been chosen; fewer than len(Witnesses64) are never returned.
func Witnesses(fits32, fits64 bool, repetition int) []uint64 {
	if fits32 {
		return Witnesses32[:]
	}
	if fits64 {
		return Witnesses64[:]
	}

	out := append([]uint64(nil), Witnesses64[:]...)
	next := uint64(3)
	for len(out) < repetition {
		if !isBaseWitness(next) {
			out = append(out, next)
		}
		next++
	}
	return out
}

func isBaseWitness(v uint64) bool {
	for _, w := range Witnesses64 {
		if w == v {
			return true
		}
	}
	return false
}
