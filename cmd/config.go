package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr         string
	RedisPassword     string
	DraftTTL          time.Duration
	SubmissionLockTTL time.Duration

	// KafkaHost is a comma separated broker list. Empty disables publishing.
	KafkaHost              string
	KafkaOrderChangedTopic string

	// ResendAPIKey empty disables email notifications.
	ResendAPIKey string
	EmailFrom    string
	AdminEmail   string

	// AdminJWTSecret signs back-office tokens. Empty locks the admin routes.
	AdminJWTSecret string

	DispatchSchedule    string
	DispatchBatch       int
	DispatchMaxAttempts int
	PurgeSchedule       string
	EventRetention      time.Duration
}

// PostgresDSN builds the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
