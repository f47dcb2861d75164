package gauss

import (
	"math"
	"math/rand"
)

/*
Gaussian draws normally distributed samples with mean Mean and standard
deviation SD via the polar Box-Muller transform.
*/
type Gaussian struct {
	Mean float64
	SD   float64

	// Source supplies the uniform randomness. Nil uses the shared
	// global source.
	Source *rand.Rand
}

/*
Sample returns one sample drawn from Normal(Mean, SD). When SD is zero
it returns Mean without consuming any randomness.
*/
func (g Gaussian) Sample() float64 {
	if g.SD == 0 {
		return g.Mean
	}
	u, _, t := polar(g.Source)
	return g.Mean + u*g.SD*t
}

/*
SampleXY returns two independent samples drawn from Normal(Mean, SD).
One accepted point in the unit disk yields both values, so this costs
the same randomness as a single Sample call. When SD is zero it returns
(Mean, Mean).
*/
func (g Gaussian) SampleXY() (float64, float64) {
	if g.SD == 0 {
		return g.Mean, g.Mean
	}
	u, v, t := polar(g.Source)
	return g.Mean + u*g.SD*t, g.Mean + v*g.SD*t
}

/*
SampleN returns n samples drawn from Normal(Mean, SD). Samples are
taken pairwise so no accepted point is wasted.
*/
func (g Gaussian) SampleN(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, 0, n)
	for len(out)+1 < n {
		x, y := g.SampleXY()
		out = append(out, x, y)
	}
	if len(out) < n {
		out = append(out, g.Sample())
	}
	return out
}

/*
Sample returns one sample drawn from Normal(mean, sd) using the global
random source.
*/
func Sample(mean, sd float64) float64 {
	return Gaussian{Mean: mean, SD: sd}.Sample()
}

/*
SampleXY returns two independent samples drawn from Normal(mean, sd)
using the global random source.
*/
func SampleXY(mean, sd float64) (float64, float64) {
	return Gaussian{Mean: mean, SD: sd}.SampleXY()
}

/*
SampleN returns n samples drawn from Normal(mean, sd) using the global
random source.
*/
func SampleN(n int, mean, sd float64) []float64 {
	return Gaussian{Mean: mean, SD: sd}.SampleN(n)
}

// polar picks a uniform point in the unit disk by rejection, redrawing
// while r = u²+v² lies on or outside the unit circle, and returns its
// coordinates along with the Box-Muller factor sqrt(-2·ln(r)/r).
func polar(src *rand.Rand) (u, v, t float64) {
	for {
		u = uniform(src, 2) - 1
		v = uniform(src, 2) - 1
		r := u*u + v*v
		if r < 1 {
			return u, v, math.Sqrt(-2 * math.Log(r) / r)
		}
	}
}
