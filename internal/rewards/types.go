package rewards

// RewardType identifies the category of a reward.
type RewardType string

const (
	RewardBadge       RewardType = "badge"
	RewardStar        RewardType = "star"
	RewardPlanet      RewardType = "planet"
	RewardCelebration RewardType = "celebration"
	RewardSession     RewardType = "session"
)

// AllRewardTypes returns all reward types in display order.
func AllRewardTypes() []RewardType {
	return []RewardType{RewardBadge, RewardStar, RewardPlanet, RewardCelebration, RewardSession}
}

// DisplayName returns a human-readable label for the reward type.
func (t RewardType) DisplayName() string {
	switch t {
	case RewardBadge:
		return "Badge"
	case RewardStar:
		return "Golden Star"
	case RewardPlanet:
		return "Planet"
	case RewardCelebration:
		return "Celebration"
	case RewardSession:
		return "Journey"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the reward type.
func (t RewardType) Icon() string {
	switch t {
	case RewardBadge:
		return "✪"
	case RewardStar:
		return "★"
	case RewardPlanet:
		return "◉"
	case RewardCelebration:
		return "✺"
	case RewardSession:
		return "🏆"
	default:
		return "✦"
	}
}

// BadgeKind is one entry of the badge catalog.
type BadgeKind struct {
	ID   string
	Name string

	// Glyph is a single-cell rune used on the star map.
	Glyph rune
}

// Catalog is the fixed set of badges a streak can earn.
var Catalog = []BadgeKind{
	{ID: "rocket", Name: "Rocket", Glyph: '▲'},
	{ID: "comet", Name: "Comet", Glyph: '☄'},
	{ID: "satellite", Name: "Satellite", Glyph: '⌖'},
	{ID: "ufo", Name: "UFO", Glyph: '◍'},
	{ID: "moon", Name: "Moon", Glyph: '☾'},
	{ID: "sun", Name: "Sun", Glyph: '☼'},
	{ID: "galaxy", Name: "Galaxy", Glyph: '❂'},
	{ID: "meteor", Name: "Meteor", Glyph: '✸'},
	{ID: "telescope", Name: "Telescope", Glyph: '⌕'},
}

// Planet is one stop on the space journey.
type Planet struct {
	Name  string
	Glyph rune
}

// Journey is the fixed order in which planets are revealed.
var Journey = []Planet{
	{Name: "Mercury", Glyph: '☿'},
	{Name: "Venus", Glyph: '♀'},
	{Name: "Earth", Glyph: '♁'},
	{Name: "Mars", Glyph: '♂'},
	{Name: "Jupiter", Glyph: '♃'},
	{Name: "Saturn", Glyph: '♄'},
	{Name: "Uranus", Glyph: '♅'},
	{Name: "Neptune", Glyph: '♆'},
}
