// Package cli implements escrowctl, the command-line client of the escrow
// service. Each subcommand maps to one service call; PINs and codes that are
// not passed as flags are prompted for, PINs without echo.
package cli
