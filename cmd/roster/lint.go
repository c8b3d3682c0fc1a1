package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/civicdata/roster/pkg/schema"
	"github.com/civicdata/roster/pkg/settings"
	"github.com/civicdata/roster/pkg/validate"
)

var (
	lintDataDir      string
	lintSettingsPath string
	lintSummary      bool
	lintJSON         bool
	lintVerbose      bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [abbr]",
	Short: "Lint every record of one jurisdiction",
	Long:  "Lint walks data/<abbr>/{people,retired,organizations}, validates every record, resolves cross-references, and checks seat assignments against settings.yml.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

var (
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// fileReport is one record file with everything lint found in it.
type fileReport struct {
	Path   string           `json:"path"`
	Result *validate.Result `json:"result"`
}

// lintReport is the full output of one lint run.
type lintReport struct {
	Files      []*fileReport    `json:"files"`
	Resolution *validate.Result `json:"resolution"`
	Summary    *lintCounts      `json:"summary,omitempty"`
}

func (r *lintReport) errorCount() int {
	n := len(r.Resolution.Errors())
	for _, f := range r.Files {
		n += len(f.Result.Errors())
	}
	return n
}

func (r *lintReport) warningCount() int {
	n := len(r.Resolution.Warnings())
	for _, f := range r.Files {
		n += len(f.Result.Warnings())
	}
	return n
}

func runLint(cmd *cobra.Command, args []string) error {
	rep, err := lintJurisdiction(args[0])
	if err != nil {
		return err
	}

	if lintJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		printReport(rep)
	}

	if n := rep.errorCount(); n > 0 {
		return fmt.Errorf("lint failed with %d error(s)", n)
	}
	return nil
}

// lintJurisdiction runs the full pipeline for one jurisdiction: per-file
// validation, batch resolution, role policy, custom checks, https
// hygiene, and seat comparison.
func lintJurisdiction(abbr string) (*lintReport, error) {
	var cfg *settings.Settings
	if _, err := os.Stat(lintSettingsPath); err == nil {
		cfg, err = settings.LoadFile(lintSettingsPath)
		if err != nil {
			return nil, err
		}
	}

	base := filepath.Join(lintDataDir, abbr)
	if _, err := os.Stat(base); err != nil {
		return nil, fmt.Errorf("no data directory for %q: %w", abbr, err)
	}

	today := validate.Today()
	rep := &lintReport{}

	var (
		persons []*schema.Person
		active  []*schema.Person
		orgs    []*schema.Organization
	)

	for _, sub := range []string{"people", "retired"} {
		retired := sub == "retired"
		for _, path := range ymlFiles(filepath.Join(base, sub)) {
			p, res := validate.ValidatePersonFile(path)
			if p != nil {
				persons = append(persons, p)
				if !retired {
					active = append(active, p)
				}
				res.Add(validate.CheckRolePolicy(p, retired, today)...)
				if cfg != nil {
					res.Add(validate.RunPersonChecks(cfg.CustomChecks, p)...)
					res.Add(validate.CheckPersonHTTPS(p, cfg.HTTPWhitelist)...)
				} else {
					res.Add(validate.CheckPersonHTTPS(p, nil)...)
				}
				checkFilename(res, path, p.ID, p.Name)
			}
			rep.Files = append(rep.Files, &fileReport{Path: path, Result: res})
		}
	}

	for _, path := range ymlFiles(filepath.Join(base, "organizations")) {
		org, res := validate.ValidateOrganizationFile(path, nil)
		if org != nil {
			orgs = append(orgs, org)
			if cfg != nil {
				res.Add(validate.RunOrganizationChecks(cfg.CustomChecks, org)...)
				res.Add(validate.CheckOrganizationHTTPS(org, cfg.HTTPWhitelist)...)
			} else {
				res.Add(validate.CheckOrganizationHTTPS(org, nil)...)
			}
			checkFilename(res, path, org.ID, org.Name)
		}
		rep.Files = append(rep.Files, &fileReport{Path: path, Result: res})
	}

	rep.Resolution = validate.Resolve(&validate.Batch{Persons: persons, Organizations: orgs}, nil)

	if cfg != nil {
		if expected, err := cfg.ExpectedDistricts(abbr); err == nil {
			rep.Resolution.Add(validate.CompareDistricts(expected, validate.ActiveSeats(active, today))...)
		}
	}

	if lintSummary {
		rep.Summary = countRecords(persons, orgs, len(persons)-len(active))
	}
	return rep, nil
}

// checkFilename warns when a file is not named the canonical
// Name-uuidtail.yml derived from its id and name.
func checkFilename(res *validate.Result, path, id, name string) {
	want := schema.Filename(id, name)
	if got := filepath.Base(path); got != want {
		res.Add(&validate.Violation{
			Path:     "filename",
			Code:     validate.CodeBadString,
			Message:  fmt.Sprintf("file is named %q, expected %q", got, want),
			Severity: validate.SeverityWarning,
		})
	}
}

func ymlFiles(dir string) []string {
	matches, _ := filepath.Glob(filepath.Join(dir, "*.yml"))
	sort.Strings(matches)
	return matches
}

func printReport(rep *lintReport) {
	for _, f := range rep.Files {
		printResult(f.Path, f.Result)
	}
	if len(rep.Resolution.Violations) > 0 {
		printResult("cross-reference resolution", rep.Resolution)
	}

	if rep.Summary != nil {
		rep.Summary.print()
	}

	errs, warns := rep.errorCount(), rep.warningCount()
	switch {
	case errs > 0:
		fmt.Println(styleError.Render(fmt.Sprintf("✗ %d error(s), %d warning(s)", errs, warns)))
	case warns > 0:
		fmt.Println(styleWarn.Render(fmt.Sprintf("⚠ %d warning(s)", warns)))
	default:
		fmt.Println(styleOK.Render("✓ all records valid"))
	}
}

func printResult(label string, res *validate.Result) {
	if len(res.Violations) == 0 {
		if lintVerbose {
			fmt.Printf("%s %s\n", styleOK.Render("✓"), label)
		}
		return
	}
	fmt.Println(label)
	for _, v := range res.Violations {
		line := fmt.Sprintf("  [%s] %s", v.Code, v.Message)
		if v.Path != "" {
			line += " at " + v.Path
		}
		if v.Severity == validate.SeverityError {
			fmt.Println(styleError.Render(line))
		} else {
			fmt.Println(styleWarn.Render(line))
		}
	}
}

// lintCounts aggregates dataset statistics for the --summary flag.
type lintCounts struct {
	People          int            `json:"people"`
	Retired         int            `json:"retired"`
	Organizations   int            `json:"organizations"`
	Parties         map[string]int `json:"parties,omitempty"`
	ContactNotes    map[string]int `json:"contact_notes,omitempty"`
	IDSchemes       map[string]int `json:"id_schemes,omitempty"`
	Classifications map[string]int `json:"classifications,omitempty"`
}

func countRecords(persons []*schema.Person, orgs []*schema.Organization, retired int) *lintCounts {
	c := &lintCounts{
		People:          len(persons) - retired,
		Retired:         retired,
		Organizations:   len(orgs),
		Parties:         map[string]int{},
		ContactNotes:    map[string]int{},
		IDSchemes:       map[string]int{},
		Classifications: map[string]int{},
	}
	for _, p := range persons {
		for _, span := range p.Party {
			c.Parties[span.Name]++
		}
		for _, cd := range p.ContactDetails {
			c.ContactNotes[cd.Note]++
		}
		for scheme := range p.IDs {
			c.IDSchemes[scheme]++
		}
	}
	for _, org := range orgs {
		c.Classifications[org.Classification]++
	}
	return c
}

func (c *lintCounts) print() {
	fmt.Printf("%d people, %d retired, %d organizations\n", c.People, c.Retired, c.Organizations)
	printCounts("parties", c.Parties)
	printCounts("contact notes", c.ContactNotes)
	printCounts("id schemes", c.IDSchemes)
	printCounts("classifications", c.Classifications)
}

func printCounts(label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("%s:\n", label)
	for _, k := range keys {
		fmt.Printf("  %s: %d\n", k, counts[k])
	}
}

func init() {
	lintCmd.Flags().StringVar(&lintDataDir, "data", "data", "root of the per-jurisdiction data tree")
	lintCmd.Flags().StringVar(&lintSettingsPath, "settings", "settings.yml", "settings file with seat layouts and custom checks")
	lintCmd.Flags().BoolVar(&lintSummary, "summary", false, "print dataset statistics")
	lintCmd.Flags().BoolVar(&lintJSON, "json", false, "emit the report as JSON")
	lintCmd.Flags().BoolVarP(&lintVerbose, "verbose", "v", false, "also list clean files")

	rootCmd.AddCommand(lintCmd)
}
