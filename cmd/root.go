package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tensequiz",
	Short: "Past tense vocabulary quiz",
	Long:  "Tense Quiz: a terminal flashcard quiz for practising present and past tense English verbs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("words", "", "Path to a JSON word list (overrides TENSEQUIZ_WORDS)")
	rootCmd.Flags().Uint64("seed", 0, "Seed for a reproducible word order (overrides TENSEQUIZ_SEED)")
	rootCmd.Flags().Bool("no-speech", false, "Disable text-to-speech")
	rootCmd.Flags().Bool("skip-intro", false, "Start on the menu instead of the splash screen")

	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(versionCmd)
}
