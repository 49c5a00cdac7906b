// Package config handles loading and validating the gateway configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables (EASYCONTROLS_*)
//   - Validation of required fields
//   - Default value handling
//
// Sensitive values (device password, MQTT credentials, InfluxDB token, JWT
// secret) should be supplied through the environment rather than the file.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Device.URL)
package config
