package email

import "time"

// Config holds checker settings loaded from the environment.
type Config struct {
	LookupTimeout     time.Duration `env:"EMAIL_MX_LOOKUP_TIMEOUT" envDefault:"5s"`
	DisposableDomains []string      `env:"EMAIL_DISPOSABLE_DOMAINS" envSeparator:","`
}
