// Package config loads algex runtime settings from YAML.
//
// Settings cover the numeric policy (mode, decimal places, tolerance) and
// the output format. Omitted fields keep their documented defaults, so a
// config file only needs to name what it changes:
//
//	mode: approximate
//	tolerance: 1e-6
//
// Load reads and validates a file; Settings converts into the typed values
// the numeric and format packages consume.
package config
