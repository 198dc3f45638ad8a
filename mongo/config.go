package mongo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvHost     = "MONGO_HOST"
	EnvUsername = "MONGO_INITDB_ROOT_USERNAME"
	EnvPassword = "MONGO_INITDB_ROOT_PASSWORD"
	EnvDatabase = "MONGO_INITDB_DATABASE"
)

// DefaultPort is used when Config.Port is empty.
const DefaultPort = "27017"

// ErrNoHost is returned when a Config has no host.
var ErrNoHost = errors.New("mongo: host not configured")

// Config holds connection settings for a MongoDB deployment.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// ConfigFromEnv reads a Config from the MONGO_* environment variables.
func ConfigFromEnv() Config {
	return Config{
		Host:     os.Getenv(EnvHost),
		Username: os.Getenv(EnvUsername),
		Password: os.Getenv(EnvPassword),
		Database: os.Getenv(EnvDatabase),
	}
}

// URI returns the connection string for c.
func (c Config) URI() string {
	port := c.Port
	if port == "" {
		port = DefaultPort
	}
	u := url.URL{
		Scheme:   "mongodb",
		Host:     c.Host + ":" + port,
		Path:     "/",
		RawQuery: "socketTimeoutMS=60000",
	}
	if c.Username != "" {
		u.User = url.UserPassword(c.Username, c.Password)
	}
	return u.String()
}

// Connect opens a client for c and verifies it with a ping.
func Connect(ctx context.Context, c Config) (*driver.Client, error) {
	if c.Host == "" {
		return nil, ErrNoHost
	}
	client, err := driver.Connect(ctx, options.Client().ApplyURI(c.URI()))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", c.Host, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("ping %s: %w", c.Host, err)
	}
	return client, nil
}
