package email

import "errors"

var (
	ErrInvalidFormat     = errors.New("email: invalid format")
	ErrMissingDomain     = errors.New("email: missing domain")
	ErrDisposableDomain  = errors.New("email: disposable domain")
	ErrNoMXRecords       = errors.New("email: no mx records")
	ErrDomainUnreachable = errors.New("email: domain does not accept email")
)

// Rejection reasons reported in Result.Reason.
const (
	ReasonInvalidFormat     = "Invalid email format"
	ReasonMissingDomain     = "Missing domain"
	ReasonDisposableDomain  = "Disposable email addresses not allowed"
	ReasonNoMXRecords       = "No MX records found for domain"
	ReasonDomainUnreachable = "Domain does not accept email"
)

var reasonErrors = map[string]error{
	ReasonInvalidFormat:     ErrInvalidFormat,
	ReasonMissingDomain:     ErrMissingDomain,
	ReasonDisposableDomain:  ErrDisposableDomain,
	ReasonNoMXRecords:       ErrNoMXRecords,
	ReasonDomainUnreachable: ErrDomainUnreachable,
}

// DomainRejection is returned by Checker.Check when an address is refused.
type DomainRejection struct {
	Address string
	Reason  string
}

func (e *DomainRejection) Error() string {
	return "email " + e.Address + " rejected: " + e.Reason
}

// Unwrap maps the rejection onto its sentinel so callers can use errors.Is.
func (e *DomainRejection) Unwrap() error {
	return reasonErrors[e.Reason]
}
