package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL"`

	JWT JWT `envPrefix:"JWT_"`
	ERP ERP `envPrefix:"ERP_"`
}

// ERP points at the external system of record for products and orders.
// An empty BaseAPIURL selects the in-process mock source.
type ERP struct {
	BaseAPIURL string `env:"BASE_API_URL"`
	APIKey     string `env:"API_KEY"`
}

type JWT struct {
	Secret    string        `env:"SECRET,notEmpty"`
	ExpiresIn time.Duration `env:"EXPIRES_IN" envDefault:"168h"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
