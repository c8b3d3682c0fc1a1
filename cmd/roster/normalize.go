package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/civicdata/roster/pkg/normalize"
	"github.com/civicdata/roster/pkg/schema"
	"github.com/civicdata/roster/pkg/validate"
)

var normalizeRename bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize [record.yml...]",
	Short: "Canonicalize record files in place",
	Long:  "Normalize rewrites whitespace, phone numbers, addresses, and sort names in each record. Records with validation errors are left untouched; warnings are tolerated.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := normalizeFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) not normalized", failed)
	}
	return nil
}

func normalizeFile(path string) error {
	kind, err := recordKind(path)
	if err != nil {
		return err
	}

	var (
		out      any
		id, name string
	)
	switch kind {
	case "person":
		p, r := validate.ValidatePersonFile(path)
		if p == nil || r.HasErrors() {
			return refuse(r)
		}
		norm := normalize.Person(p)
		out, id, name = norm, norm.ID, norm.Name
	case "organization":
		org, r := validate.ValidateOrganizationFile(path, nil)
		if org == nil || r.HasErrors() {
			return refuse(r)
		}
		norm := normalize.Organization(org)
		out, id, name = norm, norm.ID, norm.Name
	}

	if err := schema.DumpFile(path, out); err != nil {
		return err
	}
	if normalizeRename {
		want := filepath.Join(filepath.Dir(path), schema.Filename(id, name))
		if want != path {
			if err := os.Rename(path, want); err != nil {
				return err
			}
			fmt.Printf("renamed %s -> %s\n", path, want)
		}
	}
	fmt.Printf("✓ normalized %s\n", path)
	return nil
}

func refuse(res *validate.Result) error {
	errs := res.Errors()
	msgs := make([]string, 0, len(errs))
	for _, v := range errs {
		msgs = append(msgs, v.Error())
	}
	return fmt.Errorf("has %d validation error(s), fix before normalizing:\n  %s",
		len(errs), strings.Join(msgs, "\n  "))
}

// recordKind sniffs the id field to tell a person file from an
// organization file without trusting directory layout.
func recordKind(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var probe struct {
		ID string `yaml:"id"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return "", fmt.Errorf("unreadable record: %w", err)
	}
	switch {
	case strings.HasPrefix(probe.ID, schema.PersonIDPrefix):
		return "person", nil
	case strings.HasPrefix(probe.ID, schema.OrganizationIDPrefix):
		return "organization", nil
	}
	if isOrganizationPath(path) {
		return "organization", nil
	}
	return "person", nil
}

func init() {
	normalizeCmd.Flags().BoolVar(&normalizeRename, "rename", false, "also rename files to the canonical Name-id.yml form")

	rootCmd.AddCommand(normalizeCmd)
}
