package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/veristay/service-admin/internal/common/database"
)

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret string
}

// KafkaConfig holds broker addresses, topics, and the consumer group prefix.
type KafkaConfig struct {
	Brokers         []string
	GroupPrefix     string
	AdminTopic      string
	StorefrontTopic string
}

// ServiceConfig holds all configuration for the admin service.
type ServiceConfig struct {
	Port          string
	AppEnv        string
	MigrationsDir string
	DBConfig      database.PostgresConfig
	JWTConfig     JWTConfig
	KafkaConfig   KafkaConfig
}

// Load reads configuration from ADMIN_-prefixed environment variables.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("ADMIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "veristay_admin")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_GROUP_PREFIX", "veristay.")
	v.SetDefault("KAFKA_ADMIN_TOPIC", "admin.events")
	v.SetDefault("KAFKA_STOREFRONT_TOPIC", "storefront.bookings")

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ADMIN_JWT_SECRET is required")
	}

	port := v.GetString("SERVICE_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:          port,
		AppEnv:        v.GetString("APP_ENV"),
		MigrationsDir: v.GetString("MIGRATIONS_DIR"),
		DBConfig: database.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		JWTConfig: JWTConfig{Secret: secret},
		KafkaConfig: KafkaConfig{
			Brokers:         strings.Split(v.GetString("KAFKA_BROKERS"), ","),
			GroupPrefix:     v.GetString("KAFKA_GROUP_PREFIX"),
			AdminTopic:      v.GetString("KAFKA_ADMIN_TOPIC"),
			StorefrontTopic: v.GetString("KAFKA_STOREFRONT_TOPIC"),
		},
	}, nil
}
