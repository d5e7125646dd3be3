// Package cli defines the Cobra command tree for the cppgen CLI. Each file
// in this package registers one top-level command (new, declare, banner,
// copyright, etc.) with the root command. Command implementations delegate
// to internal packages for the text work and only handle flag parsing,
// prompting, and reporting.
package cli
