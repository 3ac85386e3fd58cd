// Package mash shells out to the external mash binary to estimate pairwise
// distances between assemblies.
package mash

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rrwick/Assembly-Dereplicator/internal/derep"
)

// mashExec is a small utility object for one sketch+dist run.
type mashExec struct {
	// the assembly files being sketched
	assemblies []string

	// output prefix passed to mash sketch (mash appends .msh)
	prefix string

	// the number of hashes per sketch
	sketchSize int

	// the number of CPU threads mash may use
	threads int
}

// Distances sketches the assemblies and returns every pairwise Mash
// distance between them. The output is raw: self-pairs and both symmetric
// orders are present, exactly as mash reports them against a single sketch.
// derep.BuildQueue normalizes them into the engine's queue.
func Distances(assemblies []string, sketchSize, threads int) ([]derep.Record, error) {
	dir, err := os.MkdirTemp("", "mash-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a temp dir for mash")
	}
	defer os.RemoveAll(dir)

	m := &mashExec{
		assemblies: assemblies,
		prefix:     filepath.Join(dir, "sketch"),
		sketchSize: sketchSize,
		threads:    threads,
	}

	if err := m.sketch(); err != nil {
		return nil, err
	}

	out, err := m.dist()
	if err != nil {
		return nil, err
	}

	return parseDist(out)
}

// sketch builds one combined sketch of every assembly.
func (m *mashExec) sketch() error {
	flags := []string{
		"sketch",
		"-p", strconv.Itoa(m.threads),
		"-o", m.prefix,
		"-s", strconv.Itoa(m.sketchSize),
	}
	flags = append(flags, m.assemblies...)

	// mash sketch logs progress to stderr even on success
	sketchCmd := exec.Command("mash", flags...)
	if output, err := sketchCmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "failed to execute mash sketch: %s", string(output))
	}
	return nil
}

// dist compares the sketch against itself, yielding all ordered pairs.
func (m *mashExec) dist() (string, error) {
	sketch := m.prefix + ".msh"
	if _, err := os.Stat(sketch); err != nil {
		return "", errors.Wrapf(err, "mash sketch produced no output at %s", sketch)
	}

	distCmd := exec.Command("mash", "dist", "-p", strconv.Itoa(m.threads), sketch, sketch)
	out, err := distCmd.Output()
	if err != nil {
		return "", errors.Wrap(err, "failed to execute mash dist")
	}
	return string(out), nil
}

// parseDist reads mash dist output into raw distance records. Each line is
// tab separated: reference, query, distance, p-value, shared-hashes.
func parseDist(out string) ([]derep.Record, error) {
	var records []derep.Record
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			return nil, errors.Errorf("malformed mash dist line: %q", line)
		}

		d, err := strconv.ParseFloat(cols[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed mash distance in line %q", line)
		}

		records = append(records, derep.Record{Distance: d, A: cols[0], B: cols[1]})
	}
	return records, nil
}
