// Package config loads comparison-run settings from a file.
//
// A run file describes the scenario to generate, the solver options and the
// validation tolerance in YAML, TOML or JSON (the format follows the file
// extension). Load fills a Run with the reference defaults first, so a file
// only states what differs from them, and leaves semantic validation to the
// scenario and solve packages — a loaded Run fails where it is used, with
// the constructors' own errors, not here.
package config
