// Package config loads the runtime configuration: which drivers to use,
// the hold and polling timings, where the keymap lives, and logging.
//
// Sources merge in fixed precedence: built-in defaults, then the TOML
// config file, then KEYBOW_* environment variables. The keymap itself
// is a separate file (TOML or Lua) referenced by the config; there is
// no hot-reload — configuration is read once at startup and the layer
// built from it is immutable for the process lifetime.
package config
