package visited

// HashFunc mixes a key. The set reduces the result modulo the table size.
type HashFunc func(key uint64) uint64

// Four salted multiplicative passes. Lehmer keys of near-solved boards have
// long runs of zero digits; independent mixes keep them apart.
const (
	salt1 = 0x000000000013935D
	salt2 = 0x000DB28700000000
	salt3 = 0x000000B477F00000
	salt4 = 0x00CB71000008A500

	mul1 = 56909 * 54617
	div1 = 595939
	mul2 = 65033 * 52957
	div2 = 600091
	mul3 = 53639 * 68687
	div3 = 617717
	mul4 = 78989 * 56893
	div4 = 626861

	hashDivisor = 1222219
)

// Hash is the default HashFunc. All arithmetic wraps at 64 bits.
func Hash(key uint64) uint64 {
	p1 := mul1 * (key ^ salt1) / div1
	p2 := mul2 * (key ^ salt2) / div2
	p3 := mul3 * (key ^ salt3) / div3
	p4 := mul4 * (key ^ salt4) / div4
	return (p1 + p2 + p3 + p4) / hashDivisor
}
