// Package commands defines the tools CLI, which runs the calculator, counter
// and currency converter locally without the API server.
//
// Commands
//
//   - calc        Press calculator keys and print the display
//   - count       Apply counter actions and print the value
//   - convert     Convert an amount between two currencies
//   - currencies  List the supported currencies
//
// # Implementation
//
// The root command loads the config (YAML file, .env and TOOLBOX_*
// variables) and builds the exchange-rate client before any subcommand runs.
// Output goes to the command's writer so subcommands can be driven from tests.
package commands
