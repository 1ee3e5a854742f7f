// Package simulate plays seed plans against each other on a graph.
//
// The competition aggregator treats the simulator as a black box behind the
// Engine interface. Majority is the built-in engine: a multi-colour
// majority-vote contagion in the style of the Pandemaniac game.
//
// # Majority Rules
//
//   - A node chosen as a seed by exactly one team starts in that team's
//     colour. A node chosen by several teams starts neutral.
//   - On every iteration each node counts the colours of its neighbours, one
//     vote each. Its own current colour adds 1.5 votes. A colour holding a
//     strict majority of the votes cast takes the node; otherwise the node
//     keeps its colour. All nodes update at once.
//   - The game ends at a fixed point or after a cap drawn uniformly from
//     [100, 200] iterations, whichever comes first.
//
// A team's payoff for a trial is the number of nodes it holds at the end.
package simulate
