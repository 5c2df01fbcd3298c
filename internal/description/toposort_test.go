package description

import (
	"errors"
	"testing"
)

func TestTopoSort_Order(t *testing.T) {
	order, _, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	exp := []int{2, 0, 1}
	if len(order) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, order)
	}

	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, order)
		}
	}
}

func TestTopoSort_Cycle(t *testing.T) {
	_, stuck, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	if !errors.Is(err, errCycle) {
		t.Fatalf("expected cycle error, got %v", err)
	}

	if len(stuck) != 2 || stuck[0] != 0 || stuck[1] != 1 {
		t.Fatalf("expected stuck [0 1], got %v", stuck)
	}
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, _, err := topoSort(1, func(int) []int { return []int{5} })
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}
