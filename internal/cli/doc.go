// Package cli wires together the Cobra command tree for the triad binary.
//
// It defines the root command and all subcommands (serve, analyze, provider,
// config, version), binds flags, reads configuration, sets up logging and
// returns deterministic exit codes for CI gating.
package cli
