// Package cmd is for command line interactions with the dereplicator
// application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rrwick/Assembly-Dereplicator/config"
	"github.com/rrwick/Assembly-Dereplicator/logger"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dereplicator <in_dir> <out_dir>",
	Short: "Reduce a directory of genome assemblies to a non-redundant subset",
	Long: `Reduce a directory of genome assemblies to a non-redundant subset.

Pairwise Mash distances are computed between every assembly in in_dir, then
the closest pair is repeatedly collapsed by discarding its lower-N50 member,
until the configured stop condition holds. Surviving assemblies are copied
to out_dir.

At least one of --distance, --count or --fraction must be given. When more
than one is given, dereplication continues until all of them are satisfied
at once.`,
	Version: "0.3.0",
	Args:    cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		return logger.Init(verbose)
	},
	RunE: runDereplicate,

	// errors are already logged by runDereplicate
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.Flags().Float64("distance", 0, "stop when the closest pair is at least this Mash distance apart")
	rootCmd.Flags().Int("count", 0, "stop when at most this many assemblies remain")
	rootCmd.Flags().Float64("fraction", 0, "stop when at most this fraction of assemblies remains")
	rootCmd.Flags().Int("sketch-size", 10000, "Mash assembly sketch size")
	rootCmd.Flags().Int("threads", config.DefaultThreads(), "number of CPU threads for Mash")
	rootCmd.Flags().Bool("verbose", false, "log every discard decision")

	viper.BindPFlag("distance", rootCmd.Flags().Lookup("distance"))
	viper.BindPFlag("count", rootCmd.Flags().Lookup("count"))
	viper.BindPFlag("fraction", rootCmd.Flags().Lookup("fraction"))
	viper.BindPFlag("sketch-size", rootCmd.Flags().Lookup("sketch-size"))
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}
