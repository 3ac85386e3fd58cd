// Package stats computes assembly quality metrics from FASTA files.
package stats

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"
)

// N50 returns the assembly's N50: the length of the shortest contig among
// the largest contigs that together cover at least half of the assembly.
// Gzipped files are handled transparently. An empty file has an N50 of 0.
func N50(path string) (int, error) {
	lengths, err := contigLengths(path)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, l := range lengths {
		total += l
	}

	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	running := 0
	for _, l := range lengths {
		running += l
		if running*2 >= total {
			return l, nil
		}
	}
	return 0, nil
}

// contigLengths reads every contig length from a FASTA file.
func contigLengths(path string) (lengths []int, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat assembly %s", path)
	}
	if info.Size() == 0 {
		return nil, nil
	}

	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open assembly %s", path)
	}
	defer reader.Close()

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "failed to parse assembly %s", path)
		}
		lengths = append(lengths, len(record.Seq.Seq))
	}
	return lengths, nil
}
