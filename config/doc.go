// Package config loads and validates tagextractor configuration.
//
// Settings are read from a TOML file layered over repository defaults. A
// missing file is not an error: the defaults describe a UTF-8, plain text run
// that prints the report as "word : count" lines. Command line flags override
// individual values after loading.
package config
