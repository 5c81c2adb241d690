package generator

// mulberry32 is a small deterministic integer-mixing PRNG. A fixed seed
// reproduces an identical draw sequence across runs and platforms,
// which is what makes the spine-and-branch strategy repeatable.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

func (r *mulberry32) next() uint32 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return z ^ (z >> 14)
}

// float64 returns a draw in [0, 1).
func (r *mulberry32) float64() float64 {
	return float64(r.next()) / (1 << 32)
}
