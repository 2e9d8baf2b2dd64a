// Package cli defines the Cobra command tree for the webinit CLI. The root
// command runs the interactive scaffolding session; each other file in this
// package registers one subcommand (catalog, config, version) with the root
// command. Command implementations delegate to internal packages for business
// logic and only handle arguments, I/O formatting, and user interaction.
package cli
