package config

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI       string `env:"URI"        envDefault:"localhost:6379"`
	Password  string `env:"PASSWORD"   envDefault:""`
	DB        int    `env:"DB"         envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"learnify:"`
}
