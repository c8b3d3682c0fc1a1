package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/civicdata/roster/pkg/retire"
	"github.com/civicdata/roster/pkg/validate"
)

var retireCmd = &cobra.Command{
	Use:   "retire [END_DATE] [person.yml...]",
	Short: "Retire people: close their open roles and move them to retired/",
	Long:  "Retire sets END_DATE on every open role, party span, and committee membership of each person, then moves the person file to the sibling retired/ directory.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runRetire,
}

func runRetire(cmd *cobra.Command, args []string) error {
	endDate := args[0]
	if !validate.IsFuzzyDate(endDate) || len(endDate) < 10 {
		return fmt.Errorf("end date %q must be a full YYYY-MM-DD date", endDate)
	}

	failed := 0
	for _, path := range args[1:] {
		stats, err := retire.File(path, endDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✓ %s: closed %d role(s) and %d membership(s), moved to %s\n",
			path, stats.RolesClosed, stats.MembershipsClosed, stats.NewPath)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) not retired", failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(retireCmd)
}
