package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rrwick/Assembly-Dereplicator/config"
	"github.com/rrwick/Assembly-Dereplicator/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(false); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func Test_copyOut(t *testing.T) {
	src := t.TempDir()
	a := filepath.Join(src, "a.fasta")
	if err := os.WriteFile(a, []byte(">a\nACGT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// out dir does not exist yet
	out := filepath.Join(t.TempDir(), "dereplicated")
	if err := copyOut([]string{a}, out); err != nil {
		t.Fatalf("failed, unexpected error: %v", err)
	}

	copied, err := os.ReadFile(filepath.Join(out, "a.fasta"))
	if err != nil {
		t.Fatalf("failed, copy missing: %v", err)
	}
	if string(copied) != ">a\nACGT\n" {
		t.Errorf("failed, copied contents = %q", copied)
	}
}

func Test_dereplicate_singleAssembly(t *testing.T) {
	conf := config.Config{Count: 1, SketchSize: 10000, Threads: 1}

	// one assembly needs no sketching and survives untouched
	got, trace, err := dereplicate([]string{"only.fasta"}, conf)
	if err != nil {
		t.Fatalf("failed, unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"only.fasta"}) {
		t.Errorf("failed, survivors = %v, want the single input back", got)
	}
	if len(trace) != 0 {
		t.Errorf("failed, %d discard events for a single assembly", len(trace))
	}
}

// full run against the real mash binary, skipped when it isn't installed
func Test_dereplicate(t *testing.T) {
	if _, err := exec.LookPath("mash"); err != nil {
		t.Skip("mash is not installed")
	}

	dir := filepath.Join("testdata", "assemblies")
	assemblies := []string{
		filepath.Join(dir, "far_c.fasta"),
		filepath.Join(dir, "near_a.fasta"),
		filepath.Join(dir, "near_b.fasta"),
	}

	tests := []struct {
		name string
		conf config.Config
		want int
	}{
		{
			// near_a and near_b differ by a handful of bases, far_c is unrelated
			"distance floor collapses the near pair",
			config.Config{Distance: 0.1, SketchSize: 1000, Threads: 1},
			2,
		},
		{
			"count of one",
			config.Config{Count: 1, SketchSize: 1000, Threads: 1},
			1,
		},
		{
			"count equal to input size",
			config.Config{Count: 3, SketchSize: 1000, Threads: 1},
			3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := dereplicate(assemblies, tt.conf)
			if err != nil {
				t.Fatalf("failed, unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("failed, %d survivors = %v, want %d", len(got), got, tt.want)
			}
		})
	}
}
