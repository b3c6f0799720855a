package password

type Config struct {
	Cost int `env:"PASSWORD_HASH_COST" envDefault:"10"`
}
