// Package config loads application configuration from built-in defaults,
// an optional YAML file, and IRDA_-prefixed environment variables, in that
// precedence order.
package config
