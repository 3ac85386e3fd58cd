// Package scan discovers assembly files on disk.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// extensions an assembly file may carry, gzipped or not.
var extensions = []string{
	".fasta", ".fasta.gz",
	".fna", ".fna.gz",
	".fa", ".fa.gz",
}

// FindAssemblies recursively collects assembly files beneath dir, sorted by
// path. Files with other extensions are ignored.
func FindAssemblies(dir string) ([]string, error) {
	var assemblies []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(path, ext) {
				assemblies = append(assemblies, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search %s for assemblies", dir)
	}

	sort.Strings(assemblies)
	return assemblies, nil
}
