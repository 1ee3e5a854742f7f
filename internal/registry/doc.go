// Package registry is the closed catalogue of seed-selection strategies.
//
// Every strategy has a short command-line flag ("d", "a2k"), a label used to
// name persisted seed files ("deg", "alt2ksh") and a generator that turns a
// graph and a seed count into a full SeedPlan.
//
// # Why a Closed Table
//
// Strategies are identified by the ID enumeration and stored in an array
// indexed by ID. The array length is idCount, so an ID without a table entry
// is caught by Validate at startup and by the package tests, never by a user
// asking for a strategy that silently does nothing.
//
// Each entry binds its metric when the table is built. Generators never look
// a metric up later, so two entries can never end up sharing one measure by
// accident.
//
// # Resolution
//
// Resolve maps user flags to entries. "all" expands to every entry in ID
// order. Unknown flags are logged and skipped, or rejected with
// ErrUnknownStrategy in strict mode.
package registry
