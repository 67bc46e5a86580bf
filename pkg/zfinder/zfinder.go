// Package zfinder finds every occurrence of a pattern in a text, where the pattern may
// contain Joker bytes that match any single text byte.
//
// The search builds the Z-array of pattern ∥ Sentinel ∥ text and reports every text
// position whose Z value equals the pattern length.
package zfinder

import (
	"errors"
	"math"
)

// Joker matches any single text byte when it appears in the pattern
const Joker byte = 0x40

// Sentinel separates the pattern from the text in the joined buffer
const Sentinel byte = 0xFF

// ErrNoMore is returned by Find when there are no further occurrences
var ErrNoMore = errors.New("no more occurrences")

// ErrNoMatch is returned by FindAll when the pattern does not occur at all
var ErrNoMatch = errors.New("no occurrences")

// ErrTextContainsWildcard is returned when the text holds a Joker or the Sentinel
var ErrTextContainsWildcard = errors.New("text cannot contain a joker or the sentinel")

// Equal reports whether a matches b, where b is the pattern-side byte.
// A Joker in b matches anything. A Joker in a only matches another Joker.
func Equal(a, b byte) bool {
	return a == b || b == Joker
}

// Finder enumerates the occurrences of a pattern in a text.
// A Finder is not safe for concurrent use.
type Finder struct {
	cursor  int
	pattern int
	joined  []byte
	z       []int
}

// New builds a Finder. text and pattern are copied and not retained.
func New(text, pattern []byte) (*Finder, error) {
	for _, b := range text {
		if b == Joker || b == Sentinel {
			return nil, ErrTextContainsWildcard
		}
	}

	joined := make([]byte, 0, len(pattern)+1+len(text))
	joined = append(joined, pattern...)
	joined = append(joined, Sentinel)
	joined = append(joined, text...)

	f := &Finder{
		pattern: len(pattern),
		joined:  joined,
	}
	f.buildZArray()

	return f, nil
}

// compare returns the number of consecutive positions where joined[x+j] matches
// joined[y+j]. y must be the earlier (prefix side) index.
func (f *Finder) compare(x, y int) int {
	n := len(f.joined)
	c := 0
	for x+c < n && Equal(f.joined[x+c], f.joined[y+c]) {
		c++
	}

	return c
}

// nextJokers returns, for every index, the index of the first Joker at or after it
func nextJokers(joined []byte) []int {
	next := make([]int, len(joined)+1)
	next[len(joined)] = math.MaxInt32
	for i := len(joined) - 1; i >= 0; i-- {
		if joined[i] == Joker {
			next[i] = i
		} else {
			next[i] = next[i+1]
		}
	}

	return next
}

// buildZArray fills z[i] with the length of the longest prefix of joined matching at i.
//
// Reusing a value from inside the Z-box is only exact while the reused prefix window
// holds no Joker: text ~ prefix[k+j] and prefix[k+j] ~ prefix[j] do not compose when
// prefix[k+j] is a Joker. Past the first Joker the comparison is done directly.
func (f *Finder) buildZArray() {
	n := len(f.joined)
	f.z = make([]int, n)
	if n == 0 {
		return
	}

	next := nextJokers(f.joined)
	left, right := 0, 0

	for i := 1; i < n; i++ {
		if i > right {
			c := f.compare(i, 0)
			f.z[i] = c
			if c > 0 {
				left, right = i, i+c-1
			}
			continue
		}

		k := i - left
		remaining := right - i + 1
		clean := next[k] - k

		switch {
		case f.z[k] < remaining && clean > f.z[k]:
			f.z[i] = f.z[k]
		case f.z[k] >= remaining && clean >= remaining:
			c := f.compare(right+1, remaining)
			f.z[i] = remaining + c
			left, right = i, i+f.z[i]-1
		default:
			f.z[i] = clean + f.compare(i+clean, clean)
			if end := i + f.z[i] - 1; end > right {
				left, right = i, end
			}
		}
	}
}

// PatternLen returns the pattern length
func (f *Finder) PatternLen() int {
	return f.pattern
}

// TextLen returns the text length
func (f *Finder) TextLen() int {
	return len(f.joined) - f.pattern - 1
}

// ZArray returns a copy of the Z-array over the joined buffer
func (f *Finder) ZArray() []int {
	z := make([]int, len(f.z))
	copy(z, f.z)

	return z
}

// Find returns the next text offset where the pattern occurs.
// If there are no more occurrences, ErrNoMore is returned.
func (f *Finder) Find() (int, error) {
	if f.pattern == 0 {
		return 0, ErrNoMore
	}

	start := f.cursor
	if start < f.pattern {
		start = f.pattern
	}

	for i := start + 1; i < len(f.joined); i++ {
		if f.z[i] == f.pattern {
			f.cursor = i
			return i - f.pattern - 1, nil
		}
	}

	f.cursor = len(f.joined)
	return 0, ErrNoMore
}

// FindAll returns the remaining occurrences in ascending order.
// If there are none, ErrNoMatch is returned.
func (f *Finder) FindAll() ([]int, error) {
	var result []int
	for {
		offset, err := f.Find()
		if err != nil {
			break
		}

		result = append(result, offset)
	}

	if len(result) == 0 {
		return nil, ErrNoMatch
	}

	return result, nil
}

// Reset rewinds the finder to the start of the text
func (f *Finder) Reset() {
	f.cursor = 0
}

// FindAll returns every offset in text where pattern occurs
func FindAll(text, pattern []byte) ([]int, error) {
	f, err := New(text, pattern)
	if err != nil {
		return nil, err
	}

	return f.FindAll()
}
