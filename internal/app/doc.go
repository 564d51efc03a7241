// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the two lifecycles it supports: a one-shot
// render of a sheet to a file or stream, and a long-running HTTP server that
// renders sheets and single glyphs on request. Both are decoupled from any
// specific entrypoint like a CLI.
package app
