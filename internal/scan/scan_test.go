package scan

import (
	"path/filepath"
	"reflect"
	"testing"
)

func Test_FindAssemblies(t *testing.T) {
	dir := filepath.Join("testdata", "assemblies")

	got, err := FindAssemblies(dir)
	if err != nil {
		t.Fatalf("failed, unexpected error: %v", err)
	}

	// sorted, recursive, assembly extensions only
	want := []string{
		filepath.Join(dir, "a.fasta"),
		filepath.Join(dir, "b.fa"),
		filepath.Join(dir, "c.fna"),
		filepath.Join(dir, "nested", "d.fasta.gz"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("failed, assemblies = %v, want %v", got, want)
	}
}

func Test_FindAssemblies_missingDir(t *testing.T) {
	if _, err := FindAssemblies(filepath.Join("testdata", "no_such_dir")); err == nil {
		t.Errorf("failed, no error for a missing directory")
	}
}
