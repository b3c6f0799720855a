// Package email checks whether an address is worth sending mail to.
//
// A Checker applies three checks in order and reports the first failure as
// a human-readable reason:
//
//  1. syntax: something@something.tld with no whitespace;
//  2. the domain is not on the disposable-mail denylist;
//  3. the domain publishes at least one MX record.
//
// MX lookups go through an MXResolver, net.DefaultResolver by default, and
// are bounded by a lookup timeout. Resolver failures are reported as
// "Domain does not accept email"; an empty answer as "No MX records found
// for domain".
//
//	checker := email.NewChecker(email.WithLookupTimeout(2 * time.Second))
//	res := checker.Validate(ctx, "jane@example.com")
//	if !res.Valid {
//	    return res.Reason
//	}
//
// Check returns the same verdict as a *DomainRejection which unwraps to one
// of the package sentinel errors. Predicate plugs a Checker into a
// validator.FieldRule.
//
// Sanitize turns an address into a string safe for file names and keys.
package email
