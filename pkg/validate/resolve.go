package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/civicdata/roster/pkg/schema"
)

// maxParentDepth caps the parent-chain walk. A legitimate committee tree
// is a handful of levels deep; anything past the cap is treated as a
// cycle-class defect rather than walked to the bitter end.
const maxParentDepth = 50

// Batch is the full set of records validated together. Reference
// resolution needs every record in memory: a single record cannot know
// whether the IDs it points at exist.
type Batch struct {
	Persons       []*schema.Person
	Organizations []*schema.Organization
}

// Resolve checks every cross-record reference in the batch: membership
// person IDs, organization parent references, and ID uniqueness. It never
// mutates a record and can run concurrently with reads. opts carries the
// same classification set the per-record validators ran with; nil means
// DefaultClassifications.
func Resolve(b *Batch, opts *Options) *Result {
	res := &Result{}

	persons := make(map[string]*schema.Person, len(b.Persons))
	for _, p := range b.Persons {
		if p.ID == "" {
			continue
		}
		if _, dup := persons[p.ID]; dup {
			res.Add(&Violation{
				EntityID: p.ID,
				Path:     "id",
				Code:     CodeDuplicateID,
				Message:  fmt.Sprintf("person id %q used by more than one record", p.ID),
				Severity: SeverityError,
			})
			continue
		}
		persons[p.ID] = p
	}

	orgs := make(map[string]*schema.Organization, len(b.Organizations))
	for _, org := range b.Organizations {
		if org.ID == "" {
			continue
		}
		if _, dup := orgs[org.ID]; dup {
			res.Add(&Violation{
				EntityID: org.ID,
				Path:     "id",
				Code:     CodeDuplicateID,
				Message:  fmt.Sprintf("organization id %q used by more than one record", org.ID),
				Severity: SeverityError,
			})
			continue
		}
		orgs[org.ID] = org
	}

	reportedCycles := make(map[string]bool)

	for _, org := range b.Organizations {
		resolveParent(res, org, orgs, opts.classifications(), reportedCycles)
		resolveMemberships(res, org, persons)
	}

	return res
}

// resolveParent checks a non-chamber parent reference: it must exist,
// carry an allowed classification, and not sit on a cycle.
func resolveParent(res *Result, org *schema.Organization, orgs map[string]*schema.Organization, classifications map[string]bool, reportedCycles map[string]bool) {
	if org.Parent == "" || IsChamber(org.Parent) {
		return
	}

	parent, ok := orgs[org.Parent]
	if !ok {
		res.Add(&Violation{
			EntityID: org.ID,
			Path:     "parent",
			Code:     CodeDanglingParent,
			Message:  fmt.Sprintf("parent %q does not match any organization in the batch", org.Parent),
			Severity: SeverityError,
		})
		return
	}
	if !classifications[parent.Classification] {
		res.Add(&Violation{
			EntityID: org.ID,
			Path:     "parent",
			Code:     CodeBadParent,
			Message:  fmt.Sprintf("parent %q has classification %q, which cannot hold children", org.Parent, parent.Classification),
			Severity: SeverityError,
		})
	}

	reportCycle(res, org, orgs, reportedCycles)
}

// reportCycle walks the parent chain with a per-walk visited set. A chain
// that revisits itself, or exceeds maxParentDepth, is a PARENT_CYCLE —
// reported once per cycle, keyed by the sorted cycle membership, not once
// per organization on it.
func reportCycle(res *Result, org *schema.Organization, orgs map[string]*schema.Organization, reported map[string]bool) {
	visited := map[string]int{}
	chain := []string{}

	cur := org
	for depth := 0; ; depth++ {
		if cur.Parent == "" || IsChamber(cur.Parent) {
			return // chain terminates at a chamber: no cycle
		}
		next, ok := orgs[cur.Parent]
		if !ok {
			return // dangling parent, reported elsewhere
		}
		if at, seen := visited[next.ID]; seen {
			members := append([]string{}, chain[at:]...)
			// A self-parenting org is already the chain's tail.
			if members[len(members)-1] != cur.ID {
				members = append(members, cur.ID)
			}
			key := cycleKey(members)
			if !reported[key] {
				reported[key] = true
				res.Add(&Violation{
					EntityID: next.ID,
					Path:     "parent",
					Code:     CodeParentCycle,
					Message:  fmt.Sprintf("parent chain forms a cycle: %s", strings.Join(append(members, next.ID), " -> ")),
					Severity: SeverityError,
				})
			}
			return
		}
		if depth >= maxParentDepth {
			key := "depth:" + org.ID
			if !reported[key] {
				reported[key] = true
				res.Add(&Violation{
					EntityID: org.ID,
					Path:     "parent",
					Code:     CodeParentCycle,
					Message:  fmt.Sprintf("parent chain exceeds %d levels", maxParentDepth),
					Severity: SeverityError,
				})
			}
			return
		}
		visited[cur.ID] = len(chain)
		chain = append(chain, cur.ID)
		cur = next
	}
}

// cycleKey canonicalizes a cycle's membership so each cycle is reported
// exactly once no matter which member the walk started from.
func cycleKey(members []string) string {
	sorted := make([]string, len(members))
	copy(sorted, members)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

// resolveMemberships checks membership person references against the
// batch's person index. A resolving ID whose record carries a different
// name is suspicious but not blocking.
func resolveMemberships(res *Result, org *schema.Organization, persons map[string]*schema.Person) {
	for i, m := range org.Memberships {
		if m.ID == "" {
			continue
		}
		path := fmt.Sprintf("memberships[%d].id", i)
		p, ok := persons[m.ID]
		if !ok {
			res.Add(&Violation{
				EntityID: org.ID,
				Path:     path,
				Code:     CodeDanglingMember,
				Message:  fmt.Sprintf("member %q does not match any person in the batch", m.ID),
				Severity: SeverityError,
			})
			continue
		}
		if m.Name != "" && p.Name != m.Name {
			res.Add(&Violation{
				EntityID: org.ID,
				Path:     path,
				Code:     CodeNameMismatch,
				Message:  fmt.Sprintf("%s refers to %q, not %q", m.ID, p.Name, m.Name),
				Severity: SeverityWarning,
			})
		}
	}
}
