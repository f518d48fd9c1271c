// Package config provides configuration structures and utilities for phishcheck.
// It defines where the classification service lives, how the client talks to
// it, how the block action is sent and how results are rendered.
//
// Values are resolved in increasing order of precedence:
//  1. Built-in defaults (NewConfig)
//  2. The YAML configuration file (.phishcheck)
//  3. Environment variables, optionally loaded from a .env file
//  4. Command line flags
package config
