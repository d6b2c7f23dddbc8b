// Package tradebook implements a miniature stock-trading workflow for a
// single user: a credential store with a password policy, a per-user
// portfolio of positions persisted to plain text files, a static catalog
// of tradable instruments, and a trade engine that validates and applies
// buy and sell orders against them.
//
// The package is the domain core; the interactive console application
// lives in the cmd package and the tbk binary.
package tradebook
