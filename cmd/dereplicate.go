package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rrwick/Assembly-Dereplicator/config"
	"github.com/rrwick/Assembly-Dereplicator/internal/derep"
	"github.com/rrwick/Assembly-Dereplicator/internal/mash"
	"github.com/rrwick/Assembly-Dereplicator/internal/scan"
	"github.com/rrwick/Assembly-Dereplicator/internal/stats"
	"github.com/rrwick/Assembly-Dereplicator/logger"
)

// runDereplicate is the root command: discover assemblies, compute pairwise
// distances, run the engine and copy the survivors to the output directory.
func runDereplicate(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	conf := config.New()
	if err := conf.Validate(); err != nil {
		logger.Error("invalid settings", zap.Error(err))
		return err
	}

	inDir, outDir := args[0], args[1]

	// we only need contig lengths, not validated bases
	seq.ValidateSeq = false

	assemblies, err := scan.FindAssemblies(inDir)
	if err != nil {
		logger.Error("assembly search failed", zap.Error(err))
		return err
	}
	if len(assemblies) == 0 {
		err = fmt.Errorf("no assembly files found in %s", inDir)
		logger.Error("nothing to dereplicate", zap.Error(err))
		return err
	}
	logger.Info("found assemblies", zap.Int("count", len(assemblies)), zap.String("dir", inDir))

	survivors, trace, err := dereplicate(assemblies, conf)
	if err != nil {
		logger.Error("dereplication failed", zap.Error(err))
		return err
	}

	for _, e := range trace {
		logger.Debug("discarded assembly",
			zap.String("discarded", filepath.Base(e.Discarded)),
			zap.String("kept", filepath.Base(e.Kept)),
			zap.Float64("distance", e.Distance),
			zap.Int("discardedN50", e.DiscardedN50),
			zap.Int("keptN50", e.KeptN50))
	}

	if err := copyOut(survivors, outDir); err != nil {
		logger.Error("failed to copy surviving assemblies", zap.Error(err))
		return err
	}

	logger.Info("dereplication complete",
		zap.Int("kept", len(survivors)),
		zap.Int("initial", len(assemblies)),
		zap.String("out", outDir))
	return nil
}

// dereplicate wires the collaborators to the engine. A single assembly is
// returned as-is without sketching anything.
func dereplicate(assemblies []string, conf config.Config) ([]string, []derep.Event, error) {
	if len(assemblies) == 1 {
		return assemblies, nil, nil
	}

	logger.Info("sketching assemblies with mash",
		zap.Int("sketchSize", conf.SketchSize),
		zap.Int("threads", conf.Threads))
	raw, err := mash.Distances(assemblies, conf.SketchSize, conf.Threads)
	if err != nil {
		return nil, nil, err
	}

	queue, err := derep.BuildQueue(raw, assemblies)
	if err != nil {
		return nil, nil, err
	}

	policy := derep.Policy{
		Distance: conf.Distance,
		Count:    conf.Count,
		Fraction: conf.Fraction,
	}

	// N50s are computed lazily: only assemblies that end up in a closest
	// surviving pair are ever read
	cache := stats.NewCache()
	return derep.Dereplicate(assemblies, queue, policy, cache.Get)
}

// copyOut copies each surviving assembly into outDir, creating it if needed.
func copyOut(survivors []string, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create output dir %s", outDir)
	}

	for _, a := range survivors {
		if err := copyFile(a, filepath.Join(outDir, filepath.Base(a))); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	return out.Close()
}
