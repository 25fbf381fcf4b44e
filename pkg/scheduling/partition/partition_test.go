package partition

import (
	"testing"

	"github.com/vnykmshr/piflow/internal/testutil"
	pferrors "github.com/vnykmshr/piflow/pkg/common/errors"
)

func TestPartitionScenarios(t *testing.T) {
	tests := []struct {
		name    string
		n       uint64
		workers int
		want    []Interval
	}{
		{
			name:    "remainder goes to the first intervals",
			n:       4,
			workers: 3,
			want:    []Interval{{0, 2}, {2, 3}, {3, 4}},
		},
		{
			name:    "zero items",
			n:       0,
			workers: 4,
			want:    []Interval{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
		},
		{
			name:    "even split",
			n:       9,
			workers: 3,
			want:    []Interval{{0, 3}, {3, 6}, {6, 9}},
		},
		{
			name:    "more workers than items",
			n:       2,
			workers: 4,
			want:    []Interval{{0, 1}, {1, 2}, {2, 2}, {2, 2}},
		},
		{
			name:    "single worker",
			n:       1000,
			workers: 1,
			want:    []Interval{{0, 1000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Partition(tt.n, tt.workers)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(got), len(tt.want))
			for i := range got {
				testutil.AssertEqual(t, got[i], tt.want[i])
			}
		})
	}
}

func TestPartitionInvalidWorkers(t *testing.T) {
	for _, workers := range []int{0, -1} {
		for _, n := range []uint64{0, 1, 4, 1 << 40} {
			got, err := Partition(n, workers)
			testutil.AssertErrorIs(t, err, pferrors.ErrInvalidConfiguration)
			if !pferrors.IsValidationError(err) {
				t.Fatalf("Partition(%d, %d): expected ValidationError, got %T", n, workers, err)
			}
			if got != nil {
				t.Fatalf("Partition(%d, %d) returned intervals alongside an error", n, workers)
			}
		}
	}
}

func TestPartitionProperties(t *testing.T) {
	sizes := []uint64{0, 1, 2, 3, 7, 10, 63, 64, 65, 999, 1000, 1001, 123457}
	workerCounts := []int{1, 2, 3, 4, 5, 7, 8, 16, 33, 100}

	for _, n := range sizes {
		for _, workers := range workerCounts {
			intervals, err := Partition(n, workers)
			testutil.AssertNoError(t, err)

			if len(intervals) != workers {
				t.Fatalf("Partition(%d, %d): got %d intervals", n, workers, len(intervals))
			}

			floor := n / uint64(workers)
			ceil := floor
			if n%uint64(workers) != 0 {
				ceil++
			}

			var total, next uint64
			for i, iv := range intervals {
				if iv.Start > iv.End {
					t.Fatalf("Partition(%d, %d): interval %d %v is inverted", n, workers, i, iv)
				}
				if iv.Start != next {
					t.Fatalf("Partition(%d, %d): interval %d starts at %d, want %d", n, workers, i, iv.Start, next)
				}
				if size := iv.Len(); size != floor && size != ceil {
					t.Fatalf("Partition(%d, %d): interval %d has size %d, want %d or %d", n, workers, i, size, floor, ceil)
				}
				total += iv.Len()
				next = iv.End
			}

			if total != n || next != n {
				t.Fatalf("Partition(%d, %d): covers %d indices ending at %d", n, workers, total, next)
			}
		}
	}
}

func TestPartitionDeterministic(t *testing.T) {
	a, err := Partition(1_000_003, 7)
	testutil.AssertNoError(t, err)
	b, err := Partition(1_000_003, 7)
	testutil.AssertNoError(t, err)

	for i := range a {
		testutil.AssertEqual(t, a[i], b[i])
	}
}

func TestInterval(t *testing.T) {
	iv := Interval{Start: 3, End: 7}
	testutil.AssertEqual(t, iv.Len(), uint64(4))
	testutil.AssertEqual(t, iv.Empty(), false)
	testutil.AssertEqual(t, iv.String(), "[3,7)")
	testutil.AssertEqual(t, Interval{5, 5}.Empty(), true)
}
