// Package config handles configuration management for red-panda.
//
// Configuration is layered with koanf: the embedded defaults.toml first,
// then an optional user TOML file, then RED_PANDA_ environment variables.
// The result is decoded into a Config value which is passed explicitly to
// the components that need it; nothing here is process-global.
package config
