package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkoester/boardwalk/internal/errors"
	"github.com/pkoester/boardwalk/internal/form"
	"github.com/pkoester/boardwalk/internal/project"
)

// checkHints explains what each field expects, shown next to failures.
var checkHints = map[string]string{
	form.KeyTitle:       "must not be blank",
	form.KeyDescription: fmt.Sprintf("at least %d characters", project.MinDescription),
	form.KeyPeople:      fmt.Sprintf("a number between %d and %d", project.MinPeople, project.MaxPeople),
}

var checkCmd = &cobra.Command{
	Use:   "check <title> <description> <people>",
	Short: "Validate project input without opening the board",
	Long: `Check runs the intake form validation against the given values and
prints a verdict for every field. It exits non-zero if any field fails.

Example:
  boardwalk check "Website relaunch" "Rebuild the marketing site" 3`,
	Args: cobra.ExactArgs(3),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var failures []error
	for i, f := range form.Fields() {
		if f.Check(args[i]) {
			fmt.Printf("  %-12s ok\n", f.Label)
			continue
		}
		fmt.Printf("  %-12s FAIL (%s)\n", f.Label, checkHints[f.Key])
		failures = append(failures,
			errors.NewValidationError(checkHints[f.Key]).WithField(f.Key).WithValue(args[i]))
	}

	if len(failures) > 0 {
		return errors.Join(failures...)
	}
	fmt.Println("All fields valid.")
	return nil
}
