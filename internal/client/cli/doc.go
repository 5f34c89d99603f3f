// Package cli implements sealctl, the command-line client of sealvault.
//
// Commands:
//   - seal <file>     encrypt a file and print its id and access key
//   - unseal <id>     download and decrypt an item, counting one download
//   - info <id>       show an item's metadata without counting a download
//   - delete <id>     remove an item sealed by the current owner token
//
// Global flags select the config file (--config), the server address
// (--server), the owner token (--token) and JSON output (--json). See
// package config for the file format and environment variables.
package cli
