// Package config loads typed configuration from environment variables.
//
// Structs are described with caarlos0/env tags. A .env file in the working
// directory is loaded once, on first use, through godotenv; variables that
// are already set in the process environment win over the file.
//
//	type Config struct {
//	    APIKey string `env:"LICENSESPRING_API_KEY,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each struct type is parsed once and cached; later Load calls for the same
// type return the cached copy.
package config
