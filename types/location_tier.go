package types

type LocationTier int

const (
	TierDowntown LocationTier = iota
	TierMidtown
	TierOutskirts
)

func (t LocationTier) String() string {
	switch t {
	case TierDowntown:
		return "downtown"
	case TierMidtown:
		return "midtown"
	case TierOutskirts:
		return "outskirts"
	}
	return "unknown"
}
