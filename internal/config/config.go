package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTP     HTTP     `envPrefix:"HTTP_"`
	DB       Postgres `envPrefix:"DB_"`
	RabbitMQ RabbitMQ `envPrefix:"RABBITMQ_"`
	Auth     Auth     `envPrefix:"AUTH_"`
}

type HTTP struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

type Postgres struct {
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME" envDefault:"taskboard"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

func (p Postgres) URL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Name, p.SSLMode)
}

type RabbitMQ struct {
	User     string `env:"USER" envDefault:"guest"`
	Password string `env:"PASSWORD" envDefault:"guest"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5672"`
}

func (r RabbitMQ) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.User, r.Password, r.Host, r.Port)
}

type Auth struct {
	JWTSecret  string `env:"JWT_SECRET" envDefault:"your-secret-key-change-in-production"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "TASKBOARD_",
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	return &conf, nil
}
