package opponents

import (
	"fmt"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/tidwall/gjson"
)

// Parse decodes a team → rounds object. Every plan is cycled to a full game
// and checked to hold n distinct ids per round.
func Parse(data []byte, n int) (model.CompetitorData, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("expected an object of team plans, got %s", root.Type)
	}

	out := make(model.CompetitorData)
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		team := key.String()
		plan, err := parsePlan(value)
		if err != nil {
			parseErr = fmt.Errorf("team %q: %w", team, err)
			return false
		}
		plan, err = model.Normalize(plan)
		if err != nil {
			parseErr = fmt.Errorf("team %q: %w", team, err)
			return false
		}
		if err := plan.Validate(nil, n); err != nil {
			parseErr = fmt.Errorf("team %q: %w", team, err)
			return false
		}
		out[team] = plan
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return out, nil
}

// parsePlan accepts either a list of rounds or one flat round.
func parsePlan(v gjson.Result) (model.SeedPlan, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("plan must be an array, got %s", v.Type)
	}
	items := v.Array()
	if len(items) == 0 {
		return nil, fmt.Errorf("plan is empty")
	}
	if !items[0].IsArray() {
		round, err := parseRound(v)
		if err != nil {
			return nil, err
		}
		return model.SeedPlan{round}, nil
	}

	plan := make(model.SeedPlan, 0, len(items))
	for i, item := range items {
		if !item.IsArray() {
			return nil, fmt.Errorf("round %d: mixed flat ids and rounds", i)
		}
		round, err := parseRound(item)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i, err)
		}
		plan = append(plan, round)
	}
	return plan, nil
}

func parseRound(v gjson.Result) (model.SeedRound, error) {
	var round model.SeedRound
	for _, item := range v.Array() {
		id, err := graph.ParseID(item)
		if err != nil {
			return nil, err
		}
		round = append(round, id)
	}
	return round, nil
}
