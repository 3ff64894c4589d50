package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

// sequenceSource replays fixed values, repeating the last one.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return v
}

func newCandidate(id int64, name string, weight float64) Candidate {
	return Candidate{
		Word:   vocabulary.Word{ID: id, Name: name},
		Weight: weight,
	}
}

func TestSelectNext(t *testing.T) {
	tests := []struct {
		name   string
		pool   []Candidate
		random float64
		wantID int64
	}{
		{
			name:   "single candidate is always selected",
			pool:   []Candidate{newCandidate(1, "apple", 3)},
			random: 0.75,
			wantID: 1,
		},
		{
			name: "zero draw selects the first candidate",
			pool: []Candidate{
				newCandidate(1, "apple", 1),
				newCandidate(2, "banana", 1),
			},
			random: 0,
			wantID: 1,
		},
		{
			name: "draw on a boundary stays with the earlier candidate",
			pool: []Candidate{
				newCandidate(1, "apple", 1),
				newCandidate(2, "banana", 3),
			},
			random: 0.25,
			wantID: 1,
		},
		{
			name: "draw past the first weight selects the second candidate",
			pool: []Candidate{
				newCandidate(1, "apple", 1),
				newCandidate(2, "banana", 3),
			},
			random: 0.26,
			wantID: 2,
		},
		{
			name: "heavy candidate in the middle",
			pool: []Candidate{
				newCandidate(1, "apple", 1),
				newCandidate(2, "banana", 8),
				newCandidate(3, "cherry", 1),
			},
			random: 0.5,
			wantID: 2,
		},
		{
			name: "largest draw selects the last candidate",
			pool: []Candidate{
				newCandidate(1, "apple", 0.1),
				newCandidate(2, "banana", 0.2),
				newCandidate(3, "cherry", 0.3),
			},
			random: math.Nextafter(1, 0),
			wantID: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &sequenceSource{values: []float64{tt.random}}
			got, err := SelectNext(tt.pool, src)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.Word.ID)
		})
	}
}

func TestSelectNext_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		pool []Candidate
	}{
		{
			name: "nil pool",
			pool: nil,
		},
		{
			name: "empty pool",
			pool: []Candidate{},
		},
		{
			name: "zero weight",
			pool: []Candidate{newCandidate(1, "apple", 1), newCandidate(2, "banana", 0)},
		},
		{
			name: "negative weight",
			pool: []Candidate{newCandidate(1, "apple", -2)},
		},
		{
			name: "NaN weight",
			pool: []Candidate{newCandidate(1, "apple", math.NaN())},
		},
		{
			name: "infinite weight",
			pool: []Candidate{newCandidate(1, "apple", math.Inf(1))},
		},
		{
			name: "total overflows",
			pool: []Candidate{newCandidate(1, "apple", math.MaxFloat64), newCandidate(2, "banana", math.MaxFloat64)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectNext(tt.pool, NewSeededSource(1))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSelectNext_AlwaysReturnsMember(t *testing.T) {
	pool := []Candidate{
		newCandidate(10, "apple", 1),
		newCandidate(20, "banana", 2.5),
		newCandidate(30, "cherry", 7),
		newCandidate(40, "durian", 0.3),
	}
	members := map[int64]bool{10: true, 20: true, 30: true, 40: true}
	src := NewSeededSource(42)

	for i := 0; i < 1000; i++ {
		got, err := SelectNext(pool, src)
		require.NoError(t, err)
		assert.True(t, members[got.Word.ID], "unexpected word %d", got.Word.ID)
	}
}

func TestSelectNext_DoesNotMutatePool(t *testing.T) {
	pool := []Candidate{
		newCandidate(1, "apple", 1),
		newCandidate(2, "banana", 9),
	}
	want := append([]Candidate(nil), pool...)

	_, err := SelectNext(pool, NewSeededSource(7))
	require.NoError(t, err)
	assert.Equal(t, want, pool)
}

func TestSelectNext_Distribution(t *testing.T) {
	tests := []struct {
		name  string
		a, b  float64
		draws int
	}{
		{name: "equal weights", a: 1, b: 1, draws: 20000},
		{name: "one to three", a: 1, b: 3, draws: 20000},
		{name: "fractional weights", a: 2.5, b: 0.5, draws: 20000},
	}

	// Chi-square critical value for 1 degree of freedom at p = 0.001.
	const critical = 10.828

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := []Candidate{newCandidate(1, "a", tt.a), newCandidate(2, "b", tt.b)}
			src := NewSeededSource(20240601)

			var firstCount int
			for i := 0; i < tt.draws; i++ {
				got, err := SelectNext(pool, src)
				require.NoError(t, err)
				if got.Word.ID == 1 {
					firstCount++
				}
			}

			n := float64(tt.draws)
			expectedFirst := n * tt.a / (tt.a + tt.b)
			expectedSecond := n - expectedFirst
			observedFirst := float64(firstCount)
			observedSecond := n - observedFirst

			chiSquare := math.Pow(observedFirst-expectedFirst, 2)/expectedFirst +
				math.Pow(observedSecond-expectedSecond, 2)/expectedSecond
			assert.Less(t, chiSquare, critical, "first selected %d of %d times", firstCount, tt.draws)
		})
	}
}

func TestSelectNext_HeavyWordDominates(t *testing.T) {
	pool := []Candidate{
		newCandidate(1, "a", 1),
		newCandidate(2, "b", 9),
	}
	src := NewSeededSource(99)

	var bCount int
	for i := 0; i < 10000; i++ {
		got, err := SelectNext(pool, src)
		require.NoError(t, err)
		if got.Word.ID == 2 {
			bCount++
		}
	}
	assert.InDelta(t, 9000, bCount, 200)
}

func TestIntn(t *testing.T) {
	tests := []struct {
		name   string
		random float64
		n      int
		want   int
	}{
		{name: "zero draw", random: 0, n: 5, want: 0},
		{name: "middle draw", random: 0.5, n: 4, want: 2},
		{name: "largest draw", random: math.Nextafter(1, 0), n: 3, want: 2},
		{name: "non-positive n", random: 0.7, n: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intn(&sequenceSource{values: []float64{tt.random}}, tt.n)
			assert.Equal(t, tt.want, got)
		})
	}
}
