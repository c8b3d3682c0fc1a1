// Package retire closes out a person's open roles and memberships and
// moves their file from the active tree to retired/.
package retire

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/civicdata/roster/pkg/schema"
	"github.com/civicdata/roster/pkg/validate"
)

// Person sets endDate on every role and party span that is still open as
// of today, mutating p in place. Returns the number of spans closed.
func Person(p *schema.Person, endDate string) int {
	today := validate.Today()
	closed := 0
	for i := range p.Roles {
		if validate.SpanActive(p.Roles[i].EndDate, today) {
			p.Roles[i].EndDate = endDate
			closed++
		}
	}
	for i := range p.Party {
		if validate.SpanActive(p.Party[i].EndDate, today) {
			p.Party[i].EndDate = endDate
			closed++
		}
	}
	return closed
}

// Committee closes any open membership of personID in org. Returns the
// number of memberships closed.
func Committee(org *schema.Organization, personID, endDate string) int {
	today := validate.Today()
	closed := 0
	for i := range org.Memberships {
		m := &org.Memberships[i]
		if m.ID == personID && validate.SpanActive(m.EndDate, today) {
			m.EndDate = endDate
			closed++
		}
	}
	return closed
}

// Stats summarizes what a File call changed.
type Stats struct {
	RolesClosed       int
	MembershipsClosed int
	NewPath           string
}

// File retires the person stored at path: closes their open spans, closes
// their memberships in sibling committee files, writes everything back,
// and moves the person file to the retired/ directory next to the active
// one.
func File(path, endDate string) (*Stats, error) {
	p, mismatches, err := schema.LoadPersonFile(path)
	if err != nil {
		return nil, err
	}
	if len(mismatches) > 0 {
		return nil, fmt.Errorf("%s: malformed fields, fix before retiring: %v", path, mismatches)
	}

	stats := &Stats{RolesClosed: Person(p, endDate)}

	dir := filepath.Dir(path)
	orgDir := filepath.Join(filepath.Dir(dir), "organizations")
	orgFiles, _ := filepath.Glob(filepath.Join(orgDir, "*.yml"))
	for _, orgPath := range orgFiles {
		org, orgMismatches, err := schema.LoadOrganizationFile(orgPath)
		if err != nil || len(orgMismatches) > 0 {
			continue
		}
		if n := Committee(org, p.ID, endDate); n > 0 {
			stats.MembershipsClosed += n
			if err := schema.DumpFile(orgPath, org); err != nil {
				return nil, err
			}
		}
	}

	retiredDir := filepath.Join(filepath.Dir(dir), "retired")
	if err := os.MkdirAll(retiredDir, 0o755); err != nil {
		return nil, err
	}
	newPath := filepath.Join(retiredDir, schema.Filename(p.ID, p.Name))
	if err := schema.DumpFile(newPath, p); err != nil {
		return nil, err
	}
	if newPath != path {
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}
	stats.NewPath = newPath
	return stats, nil
}
