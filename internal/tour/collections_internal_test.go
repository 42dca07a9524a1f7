package tour

import (
	"bytes"
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/langtour/internal/person"
)

func collectZip[A, B any](as []A, bs []B) ([]A, []B) {
	var (
		gotA []A
		gotB []B
	)
	for a, b := range Zip(as, bs) {
		gotA = append(gotA, a)
		gotB = append(gotB, b)
	}
	return gotA, gotB
}

func TestZip(t *testing.T) {
	t.Run("equal length", func(t *testing.T) {
		names, ages := collectZip([]string{"Alice", "Charlie"}, []uint8{24, 45})
		assert.Equal(t, []string{"Alice", "Charlie"}, names)
		assert.Equal(t, []uint8{24, 45}, ages)
	})
	t.Run("stops at the shorter input", func(t *testing.T) {
		names, ages := collectZip([]string{"Alice", "Charlie", "Dana"}, []uint8{24})
		assert.Equal(t, []string{"Alice"}, names)
		assert.Equal(t, []uint8{24}, ages)

		names, ages = collectZip([]string{"Alice"}, []uint8{24, 45})
		assert.Equal(t, []string{"Alice"}, names)
		assert.Equal(t, []uint8{24}, ages)
	})
	t.Run("empty", func(t *testing.T) {
		names, ages := collectZip([]string{}, []uint8{24})
		assert.Empty(t, names)
		assert.Empty(t, ages)
	})
	t.Run("early break", func(t *testing.T) {
		var n int
		for range Zip([]int{1, 2, 3}, []int{4, 5, 6}) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestAgeTriple(t *testing.T) {
	ages := AgeTriple{18, 41, 65}
	youngest, middle, oldest := ages.Unpack()
	assert.Equal(t, uint8(18), youngest)
	assert.Equal(t, uint8(41), middle)
	assert.Equal(t, uint8(65), oldest)
	assert.Equal(t, ages[1], middle)
}

func TestYoungestPerson_empty(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, person.ErrNoPeople, youngestPerson(&out, nil))
	assert.Empty(t, out.String())
}

func TestOptional(t *testing.T) {
	assert.Equal(t, `Some("Intel Core i5")`, optional("Intel Core i5", true))
	assert.Equal(t, "None", optional("", false))
	assert.Equal(t, "None", optional("Intel Core i5", false))
}
