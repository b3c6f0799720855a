package fetcher

import "time"

type Config struct {
	Timeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	UserAgent string        `env:"FETCH_USER_AGENT"`
}
