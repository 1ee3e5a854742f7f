// Package selector turns score maps into ordered candidate sets.
//
// Every function here is pure: it reads the graph and score maps it is given
// and returns a fresh slice of distinct node ids. Ties between equal scores
// are always broken by ascending graph.NodeID, so the same inputs give the
// same candidates on every run.
//
// Selectors know nothing about rounds. The scheduler package spreads their
// output over a game.
package selector
