// Package config provides the build configuration for neuroscan: output
// location, decorative graph parameters, counter timing and report format,
// plus the optional .neuroscan YAML file that overrides site metadata and
// theme tokens.
package config
