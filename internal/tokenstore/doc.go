// Package tokenstore keeps the Eliq Online access token between CLI runs.
//
// Three backends are available:
//   - File: a 0600 file under the user's config directory, written atomically
//   - Env: a read-only environment variable, for CI and containers
//   - Keyring: the OS credential store (macOS Keychain, Windows Credential Manager, Secret Service)
//
// Stores hand the token back exactly as it was written. The only exception
// is the single line terminator a file store appends.
package tokenstore
