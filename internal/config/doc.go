// Package config loads the optbind command configuration.
//
// Settings are layered: an optional YAML file, then OPTBIND_* environment
// variables, then built-in defaults for anything still unset. The command
// applies its own flags last.
package config
