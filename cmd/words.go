package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print the word list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(c.Entries())
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "Present", "Past", "Meaning")
		for _, e := range c.Entries() {
			t.Row(strconv.Itoa(e.ID), e.Present, e.Past, e.Translation)
		}
		_, err = fmt.Fprintln(out, t.Render())
		return err
	},
}

func init() {
	wordsCmd.Flags().Bool("json", false, "Print the list as JSON (the --words file format)")
}
