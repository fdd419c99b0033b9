package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkoester/boardwalk/internal/config"
	"github.com/pkoester/boardwalk/internal/tui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available color themes",
	Run:   runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) {
	configured := config.Get().UI.Theme
	for _, name := range styles.Builtin() {
		marker := " "
		if name == configured {
			marker = "*"
		}
		fmt.Printf(" %s %s\n", marker, name)
	}
	fmt.Println()
	fmt.Println("Switch with `boardwalk start --theme <name>`, the :theme command, or ui.theme in the config file.")
}
