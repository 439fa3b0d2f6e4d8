// Package services implements the core pipeline logic and orchestrates
// calls to driven ports (adapters).
//
// Services are pure Go with no external dependencies beyond the
// driven-port interfaces they compose.
package services
