package game

import (
	"reflect"
	"testing"
)

func TestPositionKey(t *testing.T) {
	if key := (Position{Row: 3, Col: 7}).Key(); key != "3,7" {
		t.Errorf("expected key '3,7', got '%s'", key)
	}

	// Keys must stay distinct for positions that would collide if row and
	// column were naively concatenated
	a := Position{Row: 1, Col: 23}
	b := Position{Row: 12, Col: 3}
	if a.Key() == b.Key() {
		t.Errorf("positions %v and %v share key '%s'", a, b, a.Key())
	}
}

func TestPositionEquality(t *testing.T) {
	counts := map[Position]int{}
	counts[Position{Row: 2, Col: 2}]++
	counts[Position{Row: 2, Col: 2}]++

	if len(counts) != 1 {
		t.Errorf("expected 1 map entry, got %d", len(counts))
	}
	if counts[Position{Row: 2, Col: 2}] != 2 {
		t.Errorf("expected count 2, got %d", counts[Position{Row: 2, Col: 2}])
	}
}

func TestPositionNeighbors(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want int
	}{
		{"top left corner", Position{Row: 0, Col: 0}, 3},
		{"bottom right corner", Position{Row: 8, Col: 8}, 3},
		{"edge", Position{Row: 0, Col: 4}, 5},
		{"interior", Position{Row: 4, Col: 4}, 8},
	}

	const dim = 9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neighbors := tt.pos.Neighbors(dim)
			if len(neighbors) != tt.want {
				t.Fatalf("expected %d neighbors, got %d", tt.want, len(neighbors))
			}

			seen := map[Position]bool{}
			for _, neighbor := range neighbors {
				if neighbor == tt.pos {
					t.Errorf("%v listed as its own neighbor", tt.pos)
				}
				if !neighbor.inBounds(dim) {
					t.Errorf("neighbor %v out of bounds", neighbor)
				}
				rowDelta := neighbor.Row - tt.pos.Row
				colDelta := neighbor.Col - tt.pos.Col
				if rowDelta < -1 || rowDelta > 1 || colDelta < -1 || colDelta > 1 {
					t.Errorf("neighbor %v not adjacent to %v", neighbor, tt.pos)
				}
				if seen[neighbor] {
					t.Errorf("neighbor %v listed twice", neighbor)
				}
				seen[neighbor] = true
			}
		})
	}
}

func TestPositionNeighborsDeterministic(t *testing.T) {
	pos := Position{Row: 5, Col: 5}
	if !reflect.DeepEqual(pos.Neighbors(9), pos.Neighbors(9)) {
		t.Error("neighbor order changed between calls")
	}
}
