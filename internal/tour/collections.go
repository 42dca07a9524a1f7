package tour

import "iter"

// Zip yields the elements of as and bs paired by position.
// It stops at the end of the shorter slice.
func Zip[A, B any](as []A, bs []B) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		n := min(len(as), len(bs))
		for i := 0; i < n; i++ {
			if !yield(as[i], bs[i]) {
				return
			}
		}
	}
}

// AgeTriple is a fixed size group of three ages.
type AgeTriple [3]uint8

func (at AgeTriple) Unpack() (uint8, uint8, uint8) {
	return at[0], at[1], at[2]
}
