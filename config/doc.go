// Package config loads better-axios client configuration from YAML files,
// .env files, and environment variables.
//
// The usual shape is AppConfig, which nests the client and logging config:
//
//	http:
//	  base_url: https://api.example.com
//	  timeout: 10s
//	logging:
//	  level: info
//
// Environment variables override file values (HTTP_BASE_URL, LOGGING_LEVEL,
// ...). After unmarshalling, defaults are applied and the result is
// validated with struct tags.
//
//	var cfg config.AppConfig
//	err := config.Load(&cfg, config.WithConfigFile("config.yml"))
package config
