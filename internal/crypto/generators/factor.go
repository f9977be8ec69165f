// Package generators finds generators of the multiplicative group of a
// prime field by cofactor exponentiation.
package generators

import (
	"math/big"
	"strconv"
	"strings"
)

// Factor is a prime power p^e dividing some integer.
type Factor struct {
	Prime    *big.Int
	Exponent int
}

func (f Factor) String() string {
	if f.Exponent == 1 {
		return f.Prime.String()
	}
	return f.Prime.String() + "^" + strconv.Itoa(f.Exponent)
}

// FormatFactors renders a factorization as "2^2 * 3 * 5".
func FormatFactors(factors []Factor) string {
	if len(factors) == 0 {
		return "1"
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, " * ")
}

// Factorize returns the prime factorization of n > 0 in increasing order
// of primes, by trial division. It is meant for the small moduli used in
// experiments; the running time grows with the square root of the second
// largest prime factor.
func Factorize(n *big.Int) []Factor {
	if n.Sign() <= 0 {
		return nil
	}
	rest := new(big.Int).Set(n)
	var factors []Factor

	divide := func(d *big.Int) {
		e := 0
		q, r := new(big.Int), new(big.Int)
		for {
			q.QuoRem(rest, d, r)
			if r.Sign() != 0 {
				break
			}
			rest.Set(q)
			e++
		}
		if e > 0 {
			factors = append(factors, Factor{Prime: new(big.Int).Set(d), Exponent: e})
		}
	}

	two := big.NewInt(2)
	divide(two)
	d := big.NewInt(3)
	sq := new(big.Int)
	for sq.Mul(d, d).Cmp(rest) <= 0 {
		divide(d)
		d.Add(d, two)
	}
	if rest.Cmp(big.NewInt(1)) > 0 {
		factors = append(factors, Factor{Prime: rest, Exponent: 1})
	}
	return factors
}

// EulerPhi returns Euler's totient of the integer with the given
// factorization: the product of p^(e-1) * (p-1).
func EulerPhi(factors []Factor) *big.Int {
	phi := big.NewInt(1)
	for _, f := range factors {
		pm1 := new(big.Int).Sub(f.Prime, big.NewInt(1))
		pe := new(big.Int).Exp(f.Prime, big.NewInt(int64(f.Exponent-1)), nil)
		phi.Mul(phi, pm1.Mul(pm1, pe))
	}
	return phi
}
