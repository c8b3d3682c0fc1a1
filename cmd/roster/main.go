package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/civicdata/roster/pkg/schema"
	"github.com/civicdata/roster/pkg/validate"
)

// Version is set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Validate and maintain legislative people data",
	Long:  "roster — lint, validate, normalize, and retire YAML records of legislators, executives, and committees.",
}

// --- validate ---

var validateAsOrg bool

var validateCmd = &cobra.Command{
	Use:   "validate [record.yml]",
	Short: "Validate a single person or organization record",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	var res *validate.Result
	if validateAsOrg || isOrganizationPath(path) {
		_, res = validate.ValidateOrganizationFile(path, nil)
	} else {
		_, res = validate.ValidatePersonFile(path)
	}

	for _, w := range res.Warnings() {
		fmt.Fprintf(os.Stderr, "  ⚠ [%s] %s\n", w.Code, w.Message)
		if w.Path != "" {
			fmt.Fprintf(os.Stderr, "    at: %s\n", w.Path)
		}
	}
	if errs := res.Errors(); len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "Validation failed: %d error(s)\n\n", len(errs))
		for i, e := range errs {
			fmt.Fprintf(os.Stderr, "  %d. [%s] %s\n", i+1, e.Code, e.Message)
			if e.Path != "" {
				fmt.Fprintf(os.Stderr, "     at: %s\n", e.Path)
			}
		}
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}
	fmt.Printf("✓ %s is valid\n", path)
	return nil
}

// isOrganizationPath guesses the record kind from the directory the file
// lives in. People files sit under people/ or retired/, committees under
// organizations/.
func isOrganizationPath(path string) bool {
	return filepath.Base(filepath.Dir(path)) == "organizations"
}

// --- schema ---

var schemaCmd = &cobra.Command{
	Use:   "schema [person|organization]",
	Short: "Print the JSON Schema for a record kind",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(args[0]) {
	case "person":
		data, err = schema.GeneratePersonJSONSchema()
	case "organization":
		data, err = schema.GenerateOrganizationJSONSchema()
	default:
		return fmt.Errorf("unknown record kind %q: want person or organization", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// --- version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roster %s (%s)\n", version, commit)
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateAsOrg, "org", false, "treat the file as an organization record")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}
