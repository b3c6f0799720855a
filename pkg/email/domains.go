package email

import (
	"slices"
	"strings"
)

var defaultDisposableDomains = []string{
	"mailinator.com",
	"10minutemail.com",
	"tempmail.com",
	"guerrillamail.com",
	"trashmail.com",
	"yopmail.com",
	"getnada.com",
	"maildrop.cc",
	"fakeinbox.com",
	"dispostable.com",
	"inboxkitten.com",
	"sharklasers.com",
	"grr.la",
	"spam4.me",
	"temp-mail.org",
	"moakt.com",
	"emailondeck.com",
	"mohmal.com",
	"tmail.com",
	"throwawaymail.com",
	"mytemp.email",
	"inboxbear.com",
	"temporary-mail.net",
	"luxusmail.org",
	"burnermail.io",
	"dropmail.me",
	"mailnesia.com",
	"mail-temp.com",
	"trashmail.me",
}

func newDomainSet(extra ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(defaultDisposableDomains)+len(extra))
	for _, d := range defaultDisposableDomains {
		set[d] = struct{}{}
	}
	for _, d := range extra {
		if d = normalizeDomain(d); d != "" {
			set[d] = struct{}{}
		}
	}
	return set
}

func normalizeDomain(d string) string {
	return strings.ToLower(strings.TrimSpace(d))
}

// IsDisposable reports whether domain is on the built-in denylist.
// Matching is exact and case-insensitive; subdomains are not matched.
func IsDisposable(domain string) bool {
	return slices.Contains(defaultDisposableDomains, normalizeDomain(domain))
}

// DisposableDomains returns a sorted copy of the built-in denylist.
func DisposableDomains() []string {
	out := slices.Clone(defaultDisposableDomains)
	slices.Sort(out)
	return out
}
