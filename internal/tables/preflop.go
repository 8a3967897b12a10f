package tables

import "encoding/json"

// Relative paths of the preflop documents under the configs root.
const (
	OpenPath  = "preflop/open_HU.json"
	VsPath    = "preflop/vs_HU.json"
	ModesPath = "preflop/modes.json"
)

// Vs-table keys.
const (
	KeyBBvsSB     = "BB_vs_SB"
	KeySBvsBB3Bet = "SB_vs_BB_3bet"
)

// Facing-size buckets for preflop raises, in big blinds.
const (
	BucketSmall = "small"
	BucketMid   = "mid"
	BucketLarge = "large"
)

// ComboSet is a set of 169-grid combo labels.
type ComboSet map[string]bool

// Contains reports membership; a nil set contains nothing.
func (s ComboSet) Contains(combo string) bool {
	return s[combo]
}

// UnmarshalJSON accepts the wire form, a JSON array of combo strings.
func (s *ComboSet) UnmarshalJSON(raw []byte) error {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return err
	}
	set := make(ComboSet, len(list))
	for _, c := range list {
		set[c] = true
	}
	*s = set
	return nil
}

// OpenTable maps a position to its opening range.
type OpenTable struct {
	SB ComboSet `json:"SB"`
}

// VsNode holds the continue ranges against a raise at one size bucket.
// Fourbet applies to the SB_vs_BB_3bet key; older documents spell it
// "reraise" and both are accepted.
type VsNode struct {
	Call    ComboSet `json:"call"`
	Reraise ComboSet `json:"reraise"`
	Fourbet ComboSet `json:"fourbet"`
}

// FourbetRange returns the 4-bet range, tolerating the reraise alias.
func (n VsNode) FourbetRange() ComboSet {
	if len(n.Fourbet) > 0 {
		return n.Fourbet
	}
	return n.Reraise
}

// VsTable maps vs-key then size bucket to the continue ranges.
type VsTable map[string]map[string]VsNode

// Modes holds the numeric knobs for one table mode.
type Modes struct {
	OpenBB                float64 `json:"open_bb"`
	DefendThresholdIP     float64 `json:"defend_threshold_ip"`
	DefendThresholdOOP    float64 `json:"defend_threshold_oop"`
	ReraiseIPMult         float64 `json:"reraise_ip_mult"`
	ReraiseOOPMult        float64 `json:"reraise_oop_mult"`
	ReraiseOOPOffset      float64 `json:"reraise_oop_offset"`
	CapRatio              float64 `json:"cap_ratio"`
	FourbetIPMult         float64 `json:"fourbet_ip_mult"`
	CapRatio4B            float64 `json:"cap_ratio_4b"`
	ThreebetBucketSmallLE float64 `json:"threebet_bucket_small_le"`
	ThreebetBucketMidLE   float64 `json:"threebet_bucket_mid_le"`
	PostflopCapRatio      float64 `json:"postflop_cap_ratio"`
}

// DefaultModes are the HU knobs used when the modes document is missing a
// value (or missing entirely).
var DefaultModes = Modes{
	OpenBB:                2.5,
	DefendThresholdIP:     0.42,
	DefendThresholdOOP:    0.38,
	ReraiseIPMult:         3.0,
	ReraiseOOPMult:        3.5,
	ReraiseOOPOffset:      0.5,
	CapRatio:              0.9,
	FourbetIPMult:         2.2,
	CapRatio4B:            0.9,
	ThreebetBucketSmallLE: 9.0,
	ThreebetBucketMidLE:   11.0,
	PostflopCapRatio:      0.85,
}

// Open returns the preflop open table and its version.
func (s *Store) Open() (OpenTable, int) {
	v, ver := s.get(OpenPath, func(raw []byte) (any, error) {
		var t OpenTable
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, err
		}
		return t, nil
	})
	t, ok := v.(OpenTable)
	if !ok {
		return OpenTable{}, 0
	}
	return t, ver
}

// Vs returns the preflop vs-raise table and its version. The document's
// top-level version field sits alongside the range keys, so each key is
// decoded individually.
func (s *Store) Vs() (VsTable, int) {
	v, ver := s.get(VsPath, func(raw []byte) (any, error) {
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		t := make(VsTable, len(doc))
		for k, msg := range doc {
			if k == "version" {
				continue
			}
			var buckets map[string]VsNode
			if err := json.Unmarshal(msg, &buckets); err != nil {
				return nil, err
			}
			t[k] = buckets
		}
		return t, nil
	})
	t, ok := v.(VsTable)
	if !ok {
		return nil, 0
	}
	return t, ver
}

// Mode returns the knobs for tableMode with defaults filled in, plus the
// document version (0 when the document is absent or bad; the returned
// knobs are then entirely defaults).
func (s *Store) Mode(tableMode string) (Modes, int) {
	v, ver := s.get(ModesPath, func(raw []byte) (any, error) {
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out := map[string]Modes{}
		for k, msg := range doc {
			if k == "version" {
				continue
			}
			m := DefaultModes
			if err := json.Unmarshal(msg, &m); err != nil {
				continue
			}
			out[k] = m
		}
		return out, nil
	})
	all, ok := v.(map[string]Modes)
	if !ok {
		return DefaultModes, 0
	}
	m, ok := all[tableMode]
	if !ok {
		return DefaultModes, ver
	}
	fillModeDefaults(&m)
	return m, ver
}

func fillModeDefaults(m *Modes) {
	if m.OpenBB == 0 {
		m.OpenBB = DefaultModes.OpenBB
	}
	if m.DefendThresholdIP == 0 {
		m.DefendThresholdIP = DefaultModes.DefendThresholdIP
	}
	if m.DefendThresholdOOP == 0 {
		m.DefendThresholdOOP = DefaultModes.DefendThresholdOOP
	}
	if m.ReraiseIPMult == 0 {
		m.ReraiseIPMult = DefaultModes.ReraiseIPMult
	}
	if m.ReraiseOOPMult == 0 {
		m.ReraiseOOPMult = DefaultModes.ReraiseOOPMult
	}
	if m.CapRatio == 0 {
		m.CapRatio = DefaultModes.CapRatio
	}
	if m.FourbetIPMult == 0 {
		m.FourbetIPMult = DefaultModes.FourbetIPMult
	}
	if m.CapRatio4B == 0 {
		m.CapRatio4B = DefaultModes.CapRatio4B
	}
	if m.ThreebetBucketSmallLE == 0 {
		m.ThreebetBucketSmallLE = DefaultModes.ThreebetBucketSmallLE
	}
	if m.ThreebetBucketMidLE == 0 {
		m.ThreebetBucketMidLE = DefaultModes.ThreebetBucketMidLE
	}
	if m.PostflopCapRatio == 0 {
		m.PostflopCapRatio = DefaultModes.PostflopCapRatio
	}
}

// BucketFacingSize buckets an opponent raise size (in big blinds) using the
// mode thresholds.
func (m Modes) BucketFacingSize(toBB float64) string {
	switch {
	case toBB <= m.ThreebetBucketSmallLE:
		return BucketSmall
	case toBB <= m.ThreebetBucketMidLE:
		return BucketMid
	default:
		return BucketLarge
	}
}
