package analyzer

import (
	"fmt"
	"io"
)

// FrequencyTable holds one count per category value. Slot i corresponds to
// category value i+offset, where offset is supplied by the caller.
type FrequencyTable []int

// NewFrequencyTable returns a zeroed table with size slots.
func NewFrequencyTable(size int) FrequencyTable {
	return make(FrequencyTable, size)
}

// Inc increments the slot at index.
func (t FrequencyTable) Inc(index int) {
	t[index]++
}

// Add adds every slot of other into t. Both tables must have the same length.
func (t FrequencyTable) Add(other FrequencyTable) {
	for i, n := range other {
		t[i] += n
	}
}

// Sum returns the total of all slots.
func (t FrequencyTable) Sum() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// MaxIndex returns the index holding the largest count. Ties go to the
// highest index.
func (t FrequencyTable) MaxIndex() int {
	largest := 0
	busiest := 0
	for i, n := range t {
		if n >= largest {
			largest = n
			busiest = i
		}
	}
	return busiest
}

// MinIndex returns the index holding the smallest count. Ties go to the
// highest index.
func (t FrequencyTable) MinIndex() int {
	if len(t) == 0 {
		return 0
	}
	smallest := t[0]
	quietest := 0
	for i, n := range t {
		if n <= smallest {
			smallest = n
			quietest = i
		}
	}
	return quietest
}

// MaxPairIndex returns the start index i of the adjacent pair (i, i+1) with
// the largest combined count. Ties go to the highest start index.
func (t FrequencyTable) MaxPairIndex() int {
	largest := 0
	busiest := 0
	for i := 0; i < len(t)-1; i++ {
		sum := t[i] + t[i+1]
		if sum >= largest {
			largest = sum
			busiest = i
		}
	}
	return busiest
}

// Clone returns an independent copy of the table.
func (t FrequencyTable) Clone() FrequencyTable {
	c := make(FrequencyTable, len(t))
	copy(c, t)
	return c
}

// Print writes the header followed by one "category: count" line per slot.
func (t FrequencyTable) Print(w io.Writer, header string, offset int) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for i, n := range t {
		if _, err := fmt.Fprintf(w, "%d: %d\n", i+offset, n); err != nil {
			return err
		}
	}
	return nil
}
