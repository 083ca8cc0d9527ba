package routegraph

import "testing"

func TestCheapestPicksLowestCost(t *testing.T) {
	edges := []Edge{{BlockIndex: 0, Cost: 5}, {BlockIndex: 1, Cost: 2}, {BlockIndex: 2, Cost: 9}}
	best, ok := Cheapest(edges)
	if !ok || best.BlockIndex != 1 {
		t.Fatalf("Cheapest = %+v, ok=%v, want BlockIndex=1", best, ok)
	}
}

func TestCheapestBreaksTiesByLowestIndex(t *testing.T) {
	edges := []Edge{{BlockIndex: 3, Cost: 4}, {BlockIndex: 1, Cost: 4}, {BlockIndex: 2, Cost: 4}}
	best, ok := Cheapest(edges)
	if !ok || best.BlockIndex != 1 {
		t.Fatalf("Cheapest = %+v, ok=%v, want BlockIndex=1", best, ok)
	}
}

func TestCheapestEmptyIsNotOK(t *testing.T) {
	_, ok := Cheapest(nil)
	if ok {
		t.Fatal("Cheapest(nil) ok = true, want false")
	}
}
