package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"APP_ENV"`
	Port           int    `mapstructure:"PORT"`
	ShutdownSecond int    `mapstructure:"SHUTDOWN_SECONDS"`
}

type MongoConf struct {
	URI      string `mapstructure:"MONGO_URI"`
	Database string `mapstructure:"MONGO_DB"`
}

type UploadConf struct {
	Dir string `mapstructure:"UPLOAD_DIR"`
}

type Config struct {
	App    AppConf    `mapstructure:",squash"`
	Mongo  MongoConf  `mapstructure:",squash"`
	Upload UploadConf `mapstructure:",squash"`

	// derived
	ShutdownTimeout time.Duration
}

// Load reads configuration from the process environment. A .env file in the
// working directory is picked up first; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 3000)
	v.SetDefault("SHUTDOWN_SECONDS", 15)
	v.SetDefault("MONGO_DB", "mediagallery")
	v.SetDefault("UPLOAD_DIR", "uploads")

	// AutomaticEnv alone does not feed Unmarshal, so bind each key.
	for _, key := range []string{"APP_ENV", "PORT", "SHUTDOWN_SECONDS", "MONGO_URI", "MONGO_DB", "UPLOAD_DIR"} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.App.ShutdownSecond == 0 {
		cfg.App.ShutdownSecond = 15
	}
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	return &cfg, nil
}
