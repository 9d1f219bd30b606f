// Package config loads flagkit application configuration from YAML files
// and environment variables.
//
// Files are read with viper; a .env file is loaded with godotenv when
// present; environment variables prefixed with FLAGKIT_ override file
// values (FLAGKIT_FLAGS_PROVIDER overrides flags.provider). Loaded
// configuration is validated with struct tags.
//
//	cfg, err := config.Load("config.yml")
//	factory := feature.NewFactoryFromConfig(cfg.Flags)
package config
