package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigPath      = "./config/config.yaml"
	DefaultLocalPort       = 8080
	DefaultSeedConcurrency = 4
)

type Config struct {
	TableName       string `yaml:"table_name" validate:"required"`
	Region          string `yaml:"region" validate:"required"`
	LocalPort       int    `yaml:"local_port" validate:"gte=1,lte=65535"`
	SeedConcurrency int    `yaml:"seed_concurrency" validate:"gte=1"`
}

// LoadConfigFromFile reads a yaml config, then applies environment overrides.
// With an empty path the default location is tried and may be absent.
func LoadConfigFromFile(path string) (*Config, error) {
	_ = godotenv.Load()
	optional := path == ""
	if optional {
		path = DefaultConfigPath
	}
	config := defaults()
	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		dec := yaml.NewDecoder(file)
		if err = dec.Decode(config); err != nil {
			return nil, err
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}
	if err = applyEnv(config); err != nil {
		return nil, err
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFromEnv builds the config from the Lambda environment only.
func LoadConfigFromEnv() (*Config, error) {
	config := defaults()
	if err := applyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func IsRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

func defaults() *Config {
	return &Config{LocalPort: DefaultLocalPort, SeedConcurrency: DefaultSeedConcurrency}
}

func applyEnv(config *Config) error {
	if v := os.Getenv("TABLE_NAME"); v != "" {
		config.TableName = v
	}
	if v := os.Getenv("REGION"); v != "" {
		config.Region = v
	} else if v := os.Getenv("AWS_REGION"); v != "" && config.Region == "" {
		config.Region = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		config.LocalPort = port
	}
	if v := os.Getenv("SEED_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		config.SeedConcurrency = n
	}
	return nil
}
