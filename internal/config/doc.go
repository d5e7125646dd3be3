// Package config manages user-level settings stored at ~/.cppgen/config.yaml
// and CPPGEN_* environment variables, and merges them with a project
// profile into the Settings value handed to the generators.
package config
