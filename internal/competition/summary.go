package competition

import (
	"github.com/specialistvlad/seedgrid/internal/model"
)

// TeamSummary condenses one team's performance across a competition.
type TeamSummary struct {
	Team        string
	Wins        int
	MeanPayoff  float64
	MeanUnique  float64
	TrialsTotal int
}

// Summarize builds one row per team of data, in ascending name order.
// MeanUnique averages UniqueSeeds over the simulated rounds.
func Summarize(data model.CompetitorData, results model.CompetitionResult) []TeamSummary {
	wins := WinTally(results)
	teams := data.Teams()
	out := make([]TeamSummary, 0, len(teams))
	for _, team := range teams {
		s := TeamSummary{Team: team, Wins: wins[team], TrialsTotal: len(results)}
		if len(results) > 0 {
			var payoff, unique float64
			for t, outcome := range results {
				payoff += outcome[team]
				if ids, err := UniqueSeeds(team, t, data); err == nil {
					unique += float64(len(ids))
				}
			}
			s.MeanPayoff = payoff / float64(len(results))
			s.MeanUnique = unique / float64(len(results))
		}
		out = append(out, s)
	}
	return out
}
