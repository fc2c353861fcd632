// Package config loads the router's tunable constants from an optional
// YAML file, layered over costmodel.Default and ripup.DefaultMaxIterations.
// A missing --config flag is not an error: every field defaults to the
// router's built-in constants.
package config
