package config

import "time"

// Config holds all fixture tool configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Log      LogConfig      `mapstructure:"log"      validate:"required"`
}

// DatabaseConfig describes how to reach the database the fixtures are
// written to.
type DatabaseConfig struct {
	URL            string        `mapstructure:"url"             validate:"required,url"`
	MaxConns       int32         `mapstructure:"max_conns"       validate:"gte=1,lte=100"`
	MinConns       int32         `mapstructure:"min_conns"       validate:"gte=0,ltefield=MaxConns"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"gt=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}
