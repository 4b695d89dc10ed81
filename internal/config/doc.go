// Package config loads and validates YAML configuration for notemark.
//
// A config file is found by path or by name. Names are searched as
// <name>.yaml and <name>.yml in the current directory, then in
// $XDG_CONFIG_HOME/go-notemark/ (os.UserConfigDir).
package config
