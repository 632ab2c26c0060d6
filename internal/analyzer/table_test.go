package analyzer

import (
	"bytes"
	"testing"
)

func TestFrequencyTable_MaxIndex(t *testing.T) {
	tests := []struct {
		name  string
		table FrequencyTable
		want  int
	}{
		{name: "single max", table: FrequencyTable{1, 7, 3}, want: 1},
		{name: "tie goes to highest index", table: FrequencyTable{5, 5, 3}, want: 1},
		{name: "tie at ends", table: FrequencyTable{4, 1, 4}, want: 2},
		{name: "all zero", table: FrequencyTable{0, 0, 0, 0}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.MaxIndex(); got != tt.want {
				t.Errorf("MaxIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFrequencyTable_MinIndex(t *testing.T) {
	tests := []struct {
		name  string
		table FrequencyTable
		want  int
	}{
		{name: "single min", table: FrequencyTable{4, 1, 3}, want: 1},
		{name: "tie goes to highest index", table: FrequencyTable{2, 1, 1, 3}, want: 2},
		{name: "first slot is min", table: FrequencyTable{0, 4, 5}, want: 0},
		{name: "all equal", table: FrequencyTable{3, 3, 3}, want: 2},
		{name: "empty", table: FrequencyTable{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.MinIndex(); got != tt.want {
				t.Errorf("MinIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFrequencyTable_MaxPairIndex(t *testing.T) {
	tests := []struct {
		name  string
		table FrequencyTable
		want  int
	}{
		{name: "middle pair", table: FrequencyTable{1, 2, 3, 0}, want: 1},
		{name: "tie goes to highest start", table: FrequencyTable{3, 0, 3, 0}, want: 2},
		{name: "all zero", table: FrequencyTable{0, 0, 0}, want: 1},
		{name: "single slot", table: FrequencyTable{9}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.MaxPairIndex(); got != tt.want {
				t.Errorf("MaxPairIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFrequencyTable_SumAddClone(t *testing.T) {
	table := NewFrequencyTable(3)
	table.Inc(0)
	table.Inc(2)
	table.Inc(2)

	if table.Sum() != 3 {
		t.Errorf("Expected sum 3, got %d", table.Sum())
	}

	clone := table.Clone()
	table.Add(FrequencyTable{1, 1, 1})

	if table.Sum() != 6 {
		t.Errorf("Expected sum 6 after Add, got %d", table.Sum())
	}
	if clone.Sum() != 3 {
		t.Errorf("Expected clone to be unaffected, got sum %d", clone.Sum())
	}
}

func TestFrequencyTable_Print(t *testing.T) {
	var buf bytes.Buffer
	if err := (FrequencyTable{4, 0, 2}).Print(&buf, "Day: Count", 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "Day: Count\n1: 4\n2: 0\n3: 2\n"
	if buf.String() != want {
		t.Errorf("Print output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}
