// Package config provides configuration management for the orrery service.
//
// It uses Viper to read environment variables (optionally seeded from a .env file
// through godotenv). Defaults live next to each field as `default` struct tags in
// the owning package's Config type.
//
// # Configuration Structure
//
//   - Server: page port, optional metrics port, debug flag
//   - Log: level and format
//   - Storage: S3/MinIO credentials, bucket and object key used by `orrery export --upload`
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
