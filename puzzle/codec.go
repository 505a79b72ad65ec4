package puzzle

// Ordinal is the Lehmer code of an Arrangement, optionally carrying a cached
// score in its high bits.
type Ordinal uint64

const (
	// KeyBits is the number of bits used by the permutation digits.
	KeyBits = 49
	// KeyMask selects the permutation digits of an Ordinal.
	KeyMask Ordinal = 1<<KeyBits - 1
)

// Field layout. Slot i may choose among 16-i remaining tiles, so its width
// is ceil(log2(16-i)); the last slot has no choice left.
var (
	fieldShifts = [Size]uint8{0, 4, 8, 12, 16, 20, 24, 28, 32, 35, 38, 41, 44, 46, 48, 49}
	fieldMasks  = [Size]uint64{0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0x7, 0x7, 0x7, 0x7, 0x3, 0x3, 0x1, 0}
)

// Key returns o without annotation bits. Keys are the identity of a state.
func (o Ordinal) Key() Ordinal { return o & KeyMask }

// Encode computes the Ordinal of a. The second result counts slots whose tile
// was missing from the remaining set (duplicates or out-of-range values); each
// such slot is coded as digit 0. A non-zero count means the Ordinal is garbage.
func Encode(a Arrangement) (Ordinal, int) {
	remaining := Solved
	var (
		out Ordinal
		bad int
	)
	for i := 0; i < Size; i++ {
		n := Size - i
		j := 0
		for j < n && remaining[j] != a[i] {
			j++
		}
		if j == n {
			bad++
			j = 0
		}
		out |= Ordinal(j) << fieldShifts[i]
		copy(remaining[j:n], remaining[j+1:n])
	}
	return out, bad
}

// Decode rebuilds the Arrangement coded by o. Annotation bits are ignored.
// The second result counts digits that pointed past the remaining set; those
// slots take the first remaining tile.
func Decode(o Ordinal) (Arrangement, int) {
	remaining := Solved
	var (
		out Arrangement
		bad int
	)
	for i := 0; i < Size; i++ {
		n := Size - i
		d := int((uint64(o) >> fieldShifts[i]) & fieldMasks[i])
		if d >= n {
			bad++
			d = 0
		}
		out[i] = remaining[d]
		copy(remaining[d:n], remaining[d+1:n])
	}
	return out, bad
}

// EncodeStrict is Encode that fails on any bad slot.
func EncodeStrict(a Arrangement) (Ordinal, error) {
	o, bad := Encode(a)
	if bad != 0 {
		return 0, &EncodingError{Op: "encode", Count: bad}
	}
	return o, nil
}

// DecodeStrict is Decode that fails on any bad digit.
func DecodeStrict(o Ordinal) (Arrangement, error) {
	a, bad := Decode(o)
	if bad != 0 {
		return Arrangement{}, &EncodingError{Op: "decode", Count: bad}
	}
	return a, nil
}
