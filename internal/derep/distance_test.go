package derep

import (
	"reflect"
	"testing"
)

// raw mash output carries self-pairs and both symmetric orders; the queue
// keeps one normalized record per pair, closest first
func Test_BuildQueue(t *testing.T) {
	assemblies := []string{"a", "b", "c"}
	raw := []Record{
		{0, "a", "a"},
		{0.02, "a", "b"},
		{0.02, "b", "a"},
		{0, "b", "b"},
		{0.005, "c", "b"},
		{0.005, "b", "c"},
		{0.09, "a", "c"},
		{0.09, "c", "a"},
		{0, "c", "c"},
	}

	got, err := BuildQueue(raw, assemblies)
	if err != nil {
		t.Fatalf("failed, unexpected error: %v", err)
	}

	want := []Record{
		{0.005, "b", "c"},
		{0.02, "a", "b"},
		{0.09, "a", "c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("failed, queue = %v, want %v", got, want)
	}
}

// equal distances fall back to path order so the queue is deterministic
func Test_BuildQueue_distanceTies(t *testing.T) {
	assemblies := []string{"a", "b", "c"}
	raw := []Record{
		{0.01, "b", "c"},
		{0.01, "a", "c"},
		{0.01, "a", "b"},
	}

	got, err := BuildQueue(raw, assemblies)
	if err != nil {
		t.Fatalf("failed, unexpected error: %v", err)
	}

	want := []Record{
		{0.01, "a", "b"},
		{0.01, "a", "c"},
		{0.01, "b", "c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("failed, queue = %v, want %v", got, want)
	}
}

func Test_BuildQueue_incomplete(t *testing.T) {
	assemblies := []string{"a", "b", "c"}
	raw := []Record{
		{0.02, "a", "b"},
		// no a-c or b-c pair
	}

	if _, err := BuildQueue(raw, assemblies); err == nil {
		t.Errorf("failed, no error for an incomplete distance set")
	}
}

func Test_BuildQueue_unknownAssembly(t *testing.T) {
	assemblies := []string{"a", "b"}
	raw := []Record{
		{0.02, "a", "b"},
		{0.01, "a", "z"},
	}

	if _, err := BuildQueue(raw, assemblies); err == nil {
		t.Errorf("failed, no error for a distance naming an unknown assembly")
	}
}

// a single assembly has no pairs and needs no distances
func Test_BuildQueue_singleAssembly(t *testing.T) {
	got, err := BuildQueue(nil, []string{"a"})
	if err != nil {
		t.Fatalf("failed, unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("failed, queue = %v, want empty", got)
	}
}
