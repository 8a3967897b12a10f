package tables

import (
	"encoding/json"
	"fmt"
)

// Shipped flop strategies.
const (
	StrategyLoose  = "loose"
	StrategyMedium = "medium"
	StrategyTight  = "tight"
)

// RuleTree is the nested flop rule document: pot_type -> "role" -> role ->
// ip|oop -> texture -> spr_bucket -> hand_class -> leaf, with a "defaults"
// key permitted at every level.
type RuleTree map[string]any

// RuleLeaf is the decision at the bottom of a rule path.
type RuleLeaf struct {
	Action  string              `json:"action"`
	SizeTag string              `json:"size_tag,omitempty"`
	Plan    string              `json:"plan,omitempty"`
	Facing  map[string]RuleLeaf `json:"facing,omitempty"`
}

// NormalizeStrategy coerces any input onto a shipped strategy name,
// defaulting to medium.
func NormalizeStrategy(s string) string {
	switch s {
	case StrategyLoose, StrategyMedium, StrategyTight:
		return s
	default:
		return StrategyMedium
	}
}

// FlopRulesPath returns the document path for a strategy.
func FlopRulesPath(strategy string) string {
	return fmt.Sprintf("postflop/flop_rules_HU_%s.json", NormalizeStrategy(strategy))
}

// FlopRules returns the rule tree for a strategy and its version.
func (s *Store) FlopRules(strategy string) (RuleTree, int) {
	v, ver := s.get(FlopRulesPath(strategy), func(raw []byte) (any, error) {
		var t RuleTree
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, err
		}
		return t, nil
	})
	t, ok := v.(RuleTree)
	if !ok {
		return nil, 0
	}
	return t, ver
}

// Match descends the tree along path. At each level the exact key wins; a
// "defaults" sibling is the fallback; anything else ends the lookup. The
// result is the decoded leaf, or false when no leaf was reached.
func (t RuleTree) Match(path ...string) (RuleLeaf, bool) {
	return descend(map[string]any(t), path, true)
}

// MatchStrict is Match without the defaults fallback; used by the
// JSON-driven value-raise lookup which must only fire on exact paths.
func (t RuleTree) MatchStrict(path ...string) (RuleLeaf, bool) {
	return descend(map[string]any(t), path, false)
}

func descend(node map[string]any, path []string, useDefaults bool) (RuleLeaf, bool) {
	cur := any(node)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return RuleLeaf{}, false
		}
		next, ok := m[key]
		if !ok && useDefaults {
			next, ok = m["defaults"]
		}
		if !ok {
			return RuleLeaf{}, false
		}
		cur = next
	}
	return decodeLeaf(cur)
}

func decodeLeaf(v any) (RuleLeaf, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return RuleLeaf{}, false
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return RuleLeaf{}, false
	}
	var leaf RuleLeaf
	if err := json.Unmarshal(raw, &leaf); err != nil {
		return RuleLeaf{}, false
	}
	if leaf.Action == "" {
		return RuleLeaf{}, false
	}
	return leaf, true
}
