// Package opponents supplies the other teams' seed plans a strategy is
// evaluated against.
//
// Two sources exist:
//
//   - Recorded reads JSON files from a previous game. Each file is an object
//     mapping a team name to its rounds, either a list of rounds
//     ([["1","2"],["3","4"]]) or a single flat round (["1","2"]). Ids may be
//     strings or numbers.
//   - Live asks a socket.io server for the current field. It emits
//     "request_seeds" with {"graph": name, "seeds": n} and waits for a "seeds"
//     event carrying the same JSON shape as a recorded file.
//
// Plans with fewer than model.RoundCount rounds are cycled to a full game.
package opponents

import (
	"context"
	"fmt"

	"github.com/specialistvlad/seedgrid/internal/model"
)

// Source fetches competitor plans for a graph and seed count.
type Source interface {
	Fetch(ctx context.Context, graphName string, n int) (model.CompetitorData, error)
}

// Multi merges several sources. A team reported by more than one source is
// an error.
type Multi []Source

// Fetch implements Source.
func (m Multi) Fetch(ctx context.Context, graphName string, n int) (model.CompetitorData, error) {
	out := make(model.CompetitorData)
	for _, src := range m {
		data, err := src.Fetch(ctx, graphName, n)
		if err != nil {
			return nil, err
		}
		if err := mergeInto(out, data); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func mergeInto(dst, src model.CompetitorData) error {
	for _, team := range src.Teams() {
		if _, dup := dst[team]; dup {
			return fmt.Errorf("team %q is reported twice", team)
		}
		dst[team] = src[team]
	}
	return nil
}
