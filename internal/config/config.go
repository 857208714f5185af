package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL"`

	Stripe Stripe `envPrefix:"STRIPE_"`
	Admin  Admin  `envPrefix:"ADMIN_"`
	JWT    JWT    `envPrefix:"JWT_"`
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

type Stripe struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey  string `env:"SECRET_KEY"`
	Currency   string `env:"CURRENCY" envDefault:"gbp"`
}

// Admin is the bootstrap admin account seeded on first start.
type Admin struct {
	Email    string `env:"EMAIL" envDefault:"admin@candleshop.local"`
	Password string `env:"PASSWORD"`
}

type JWT struct {
	Secret        string `env:"SECRET"`
	ExpiryMinutes int    `env:"EXPIRY_MINUTES" envDefault:"60"`
}
