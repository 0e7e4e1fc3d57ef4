// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the conversion lifecycle that loads SXFM
// models, translates them to HLVL and writes the programs, decoupled from any
// specific entrypoint like a CLI.
package app
