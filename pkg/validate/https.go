package validate

import (
	"fmt"
	"strings"

	"github.com/civicdata/roster/pkg/schema"
)

// httpsOK reports whether a URL is HTTPS or sits on the plain-http
// whitelist. Blank values pass; presence is someone else's check.
func httpsOK(url string, whitelist []string) bool {
	if url == "" || !strings.HasPrefix(url, "http://") {
		return true
	}
	for _, prefix := range whitelist {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

// CheckPersonHTTPS warns about plain-http URLs on a person record.
// Some government sites still don't serve HTTPS; those go on the
// settings whitelist.
func CheckPersonHTTPS(p *schema.Person, whitelist []string) []*Violation {
	res := &Result{EntityID: p.ID}
	if !httpsOK(p.Image, whitelist) {
		res.Add(warningf(CodeHTTPURL, "image", "image URL %s should be HTTPS", p.Image))
	}
	checkLinksHTTPS(res, "links", p.Links, whitelist)
	checkLinksHTTPS(res, "sources", p.Sources, whitelist)
	return res.Violations
}

// CheckOrganizationHTTPS warns about plain-http URLs on an organization.
func CheckOrganizationHTTPS(org *schema.Organization, whitelist []string) []*Violation {
	res := &Result{EntityID: org.ID}
	checkLinksHTTPS(res, "links", org.Links, whitelist)
	checkLinksHTTPS(res, "sources", org.Sources, whitelist)
	return res.Violations
}

func checkLinksHTTPS(res *Result, base string, links []schema.Link, whitelist []string) {
	for i, l := range links {
		if !httpsOK(l.URL, whitelist) {
			res.Add(warningf(CodeHTTPURL, fmt.Sprintf("%s[%d].url", base, i), "URL %s should be HTTPS", l.URL))
		}
	}
}
