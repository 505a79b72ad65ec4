package puzzle

const (
	scoreShift = KeyBits
	scoreMask  = 0x1f
)

// Score counts the cells whose tile matches Solved.
func Score(a Arrangement) int {
	n := 0
	for i, v := range a {
		if v == Solved[i] {
			n++
		}
	}
	return n
}

// Decorate caches the score of o in its high bits. The result has the same Key
// as o. Already decorated input is masked first, so decorating twice is safe.
func Decorate(o Ordinal) Ordinal {
	k := o.Key()
	a, _ := Decode(k)
	return k | Ordinal(Score(a))<<scoreShift
}

// Undecorate strips the cached score.
func Undecorate(o Ordinal) Ordinal { return o.Key() }

// DecoratedScore reads the score cached by Decorate.
func DecoratedScore(o Ordinal) int {
	return int((uint64(o) >> scoreShift) & scoreMask)
}
