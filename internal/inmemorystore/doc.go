// Package inmemorystore provides a thread-safe, in-memory implementation
// of the seedstore.Store interface. It is suitable for tests, dry runs, or
// any scenario where seed plans do not need to outlive the process.
package inmemorystore
