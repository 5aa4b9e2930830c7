// Package commands defines the wonders CLI.
//
// Commands
//
//   - wonders        Browse the ancient and new wonders of the world in the terminal
//   - wonders list   Print the catalog without starting the interface
//
// Configuration is resolved by viper: built-in defaults, then
// $HOME/.config/wonders/config.yml (or --config), then WONDERS_* environment
// variables, then flags.
package commands
