package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret            string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes  int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`
	JWTRefreshTTLMinutes int    `env:"JWT_REFRESH_TTL_MINUTES" envDefault:"43200"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`

	// Cuotas de la consulta pública de resultados y del login del panel.
	LookupRateWindowMinutes int `env:"LOOKUP_RATE_WINDOW_MINUTES" envDefault:"2"`
	LookupRateMax           int `env:"LOOKUP_RATE_MAX" envDefault:"6"`
	LoginRateWindowMinutes  int `env:"LOGIN_RATE_WINDOW_MINUTES" envDefault:"10"`
	LoginRateMax            int `env:"LOGIN_RATE_MAX" envDefault:"5"`

	ResultsCacheTTLMinutes int `env:"RESULTS_CACHE_TTL_MINUTES" envDefault:"10"`

	// Cuenta inicial del panel de profesionales; sin email o contraseña
	// el seed se omite.
	SeedProfessionalEmail    string `env:"SEED_PROFESSIONAL_EMAIL"`
	SeedProfessionalPassword string `env:"SEED_PROFESSIONAL_PASSWORD"`
	SeedProfessionalNome     string `env:"SEED_PROFESSIONAL_NOME"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
