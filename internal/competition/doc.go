// Package competition evaluates seed plans against each other.
//
// An Aggregator merges a team's plan into the competitor data, hands the
// whole field to a simulate.Engine once, and derives comparative numbers
// from the result: seeds no other team picked, trial wins and averages.
//
// Whenever iteration order matters (ties in WinTally, report rows) teams are
// visited in ascending name order.
package competition
