package achievement

// Tier is a rarity band derived from the global unlock percentage.
type Tier int

const (
	Common Tier = iota
	Uncommon
	Rare
	Epic
	Legendary
)

const (
	boundLegendary = 1.0
	boundEpic      = 10.0
	boundRare      = 25.0
	boundUncommon  = 50.0
)

func (t Tier) String() string {
	switch t {
	case Legendary:
		return "legendary"
	case Epic:
		return "epic"
	case Rare:
		return "rare"
	case Uncommon:
		return "uncommon"
	default:
		return "common"
	}
}

// TierFor classifies a global unlock percentage.
func TierFor(percentage float32) Tier {
	switch {
	case percentage <= boundLegendary:
		return Legendary
	case percentage <= boundEpic:
		return Epic
	case percentage <= boundRare:
		return Rare
	case percentage <= boundUncommon:
		return Uncommon
	default:
		return Common
	}
}

// CompletionTier classifies how much of an application is unlocked. A full
// set is reported separately by the caller; this only bands partial progress.
func CompletionTier(done, total int) Tier {
	if total == 0 {
		return Common
	}
	ratio := float64(done) / float64(total) * 100
	switch {
	case ratio > 90:
		return Legendary
	case ratio > 75:
		return Epic
	case ratio > 50:
		return Rare
	case ratio > 25:
		return Uncommon
	default:
		return Common
	}
}
