// floatparse.go: bit-exact float parsing (spec.md §4.6)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package gojson

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// minPow10, maxPow10 bound the decimal-exponent range the fast-path
// table below covers; values outside this range always fall back to the
// slow path. 634 entries, matching the table spec.md §3 names
// ("pow10Mantissa[i]" over an "[-325, 308]" range).
const (
	minPow10 = -325
	maxPow10 = 308
	numPow10 = maxPow10 - minPow10 + 1
)

// pow10Hi, pow10Lo hold the 128-bit normalized mantissa (MSB of pow10Hi
// always set) approximating 10^q for q in [minPow10, maxPow10]; pow10Exp2
// holds the matching binary exponent, such that
// 10^q ≈ (pow10Hi:pow10Lo as a 128-bit integer) * 2^pow10Exp2.
// Built once at init via math/big rather than hand-transcribed, since
// typing 634 128-bit literals by hand is both impractical and far more
// error-prone than deriving them arithmetically from the same 10^q the
// algorithm is defined over.
var (
	pow10Hi  [numPow10]uint64
	pow10Lo  [numPow10]uint64
	pow10Exp [numPow10]int32
)

func init() {
	const prec = 256
	ten := big.NewInt(10)
	one := big.NewFloat(1).SetPrec(prec)
	twoPow128 := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), 128)

	for q := minPow10; q <= maxPow10; q++ {
		var val *big.Float
		if q >= 0 {
			n := new(big.Int).Exp(ten, big.NewInt(int64(q)), nil)
			val = new(big.Float).SetPrec(prec).SetInt(n)
		} else {
			n := new(big.Int).Exp(ten, big.NewInt(int64(-q)), nil)
			den := new(big.Float).SetPrec(prec).SetInt(n)
			val = new(big.Float).SetPrec(prec).Quo(one, den)
		}

		mant := new(big.Float).SetPrec(prec)
		exp := val.MantExp(mant) // val == mant * 2^exp, 0.5 <= mant < 1

		scaled := new(big.Float).SetPrec(prec).Mul(mant, twoPow128)
		scaled.Add(scaled, big.NewFloat(0.5))
		mInt, _ := scaled.Int(nil)

		if mInt.BitLen() > 128 {
			mInt.Rsh(mInt, 1)
			exp++
		}

		idx := q - minPow10
		pow10Exp[idx] = int32(exp - 128)

		words := mInt.Bits()
		var lo, hi uint64
		switch {
		case len(words) >= 2:
			lo = uint64(words[0])
			hi = uint64(words[1])
		case len(words) == 1:
			lo = uint64(words[0])
		}
		if bits.UintSize == 32 && len(words) >= 4 {
			lo = uint64(words[0]) | uint64(words[1])<<32
			hi = uint64(words[2]) | uint64(words[3])<<32
		}
		pow10Hi[idx] = hi
		pow10Lo[idx] = lo
	}
}

// eiselLemire64 attempts the Eisel-Lemire fast path for man * 10^exp10,
// returning ok=false whenever the 128-bit product lands too close to a
// rounding boundary to resolve confidently — the caller always has an
// exact slow path (strconv.ParseFloat) to fall back to, per spec.md
// §4.6's "fast-fast / Eisel-Lemire / slow-path cascade".
func eiselLemire64(man uint64, exp10 int, neg bool) (float64, bool) {
	if man == 0 {
		if neg {
			return math.Copysign(0, -1), true
		}
		return 0, true
	}
	if exp10 < minPow10 || exp10 > maxPow10 {
		return 0, false
	}

	clz := bits.LeadingZeros64(man)
	manNorm := man << uint(clz)

	idx := exp10 - minPow10
	hi, lo := pow10Hi[idx], pow10Lo[idx]

	hiProdHi, hiProdLo := bits.Mul64(manNorm, hi)
	loProdHi, _ := bits.Mul64(manNorm, lo)

	mergedLo := hiProdLo + loProdHi
	mergedHi := hiProdHi
	if mergedLo < hiProdLo {
		mergedHi++
	}

	// Too close to a halfway rounding boundary to trust: bail to the
	// slow path rather than risk a misrounded last bit.
	if mergedHi&0x1FF == 0x1FF && mergedLo+man < man {
		return 0, false
	}

	retExp2 := pow10Exp[idx] + 127 + 64 - int32(clz)

	msb := mergedHi >> 63
	mantissa := mergedHi >> (msb + 9)
	retExp2 -= int32(1 - msb)

	if mergedLo == 0 && mergedHi&0x1FF == 0 && mantissa&3 == 1 {
		return 0, false
	}

	mantissa += mantissa & 1
	mantissa >>= 1
	if mantissa>>53 != 0 {
		mantissa >>= 1
		retExp2++
	}

	biased := retExp2 + 1023
	if biased <= 0 || biased >= 2047 {
		return 0, false
	}

	bitsOut := (mantissa &^ (uint64(1) << 52)) | uint64(biased)<<52
	f := math.Float64frombits(bitsOut)
	if neg {
		f = -f
	}
	return f, true
}

// parseFloat64 converts a parsed JSON number (sign, integer mantissa,
// decimal exponent, and the original literal for the slow path) into a
// float64. A mantissa of at most 2^53-1 with |exp10| <= 22 is converted
// exactly by a single multiply or divide by a power of ten; otherwise
// eiselLemire64 is tried, and when it declines, literal (the full numeric
// token as it appeared in the input) is handed verbatim to
// strconv.ParseFloat. A literal whose magnitude overflows float64 is
// reported as ErrNumberRange.
func parseFloat64(neg bool, mantissa uint64, exp10 int, literal []byte) (float64, error) {
	if mantissa <= 1<<53-1 && exp10 >= -22 && exp10 <= 22 {
		f := float64(mantissa)
		if exp10 >= 0 {
			f *= math.Pow10(exp10)
		} else {
			f /= math.Pow10(-exp10)
		}
		if neg {
			f = -f
		}
		return f, nil
	}
	if f, ok := eiselLemire64(mantissa, exp10, neg); ok {
		return f, nil
	}
	f, err := strconv.ParseFloat(string(literal), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, newDecodeErrorf(ErrNumberRange, "number out of range %q", literal)
		}
		return 0, newDecodeErrorf(ErrInvalidNumber, "invalid number literal %q", literal)
	}
	return f, nil
}
