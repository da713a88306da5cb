package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tensequiz/internal/quiz"
)

var hintCmd = &cobra.Command{
	Use:   "hint <word>",
	Short: "Print the masked hint for a word",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), quiz.GenerateHint(strings.Join(args, " ")))
	},
}
