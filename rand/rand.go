// SPDX-License-Identifier: GPL-2.0-or-later

package rand

const (
	noise1 = 0xB5297A4D
	noise2 = 0x68E31DA4
	noise3 = 0x1B56C4E9
)

// Generator produces a deterministic sample sequence. The same seed
// always yields the same sequence, so a failing sample reproduces
// exactly.
type Generator struct {
	idx  uint32
	seed uint32
}

func New(seed uint32) Generator {
	return Generator{idx: 0, seed: seed}
}

func noise(p uint32, s uint32) uint32 {
	m := p
	m *= noise1
	m += s
	m ^= (m >> 8)
	m *= noise2
	m ^= (m << 8)
	m *= noise3
	m ^= (m >> 8)
	return m
}

func (g *Generator) rand() uint32 {
	g.idx++
	return noise(g.idx, g.seed)
}

func (g *Generator) Uint32n(n uint32) uint32 {
	return g.rand() % n
}

func (g *Generator) Intn(n int) int {
	return int(g.Uint32n(uint32(n)))
}

// Float64 returns a sample within [0, 1).
func (g *Generator) Float64() float64 {
	return float64(g.Uint32n(1<<26)) / (1 << 26)
}

// Angle returns a degree value within [-turns*360, turns*360).
func (g *Generator) Angle(turns float64) float64 {
	return (g.Float64()*2 - 1) * turns * 360
}
