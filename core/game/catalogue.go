package game

// Playable is a game of the student game mode, unlocked from a given level.
type Playable struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	XPReward    int    `json:"xp_reward"`
	UnlockLevel int    `json:"unlock_level"`
	Unlocked    bool   `json:"unlocked"`
	Thumbnail   string `json:"thumbnail"`
}

var playables = []Playable{
	{ID: "element-explorer", Title: "Element Explorer", Difficulty: "Beginner", XPReward: 50, UnlockLevel: 1, Thumbnail: "🌍",
		Description: "Discover how elements combine to create materials in a Minecraft-like world"},
	{ID: "pollution-fighter", Title: "Pollution Fighter", Difficulty: "Intermediate", XPReward: 75, UnlockLevel: 3, Thumbnail: "🌊",
		Description: "Battle pollution sources and clean up contaminated environments"},
	{ID: "ecosystem-builder", Title: "Ecosystem Builder", Difficulty: "Advanced", XPReward: 100, UnlockLevel: 5, Thumbnail: "🌳",
		Description: "Build and maintain balanced ecosystems with diverse flora and fauna"},
	{ID: "climate-hero", Title: "Climate Hero", Difficulty: "Expert", XPReward: 150, UnlockLevel: 8, Thumbnail: "🌤️",
		Description: "Tackle climate change challenges and implement sustainable solutions"},
}

// Catalogue lists the student games, unlocking those at or below level.
// A level below 1 (unset) counts as 1.
func Catalogue(level int) []Playable {
	if level < 1 {
		level = 1
	}
	out := make([]Playable, len(playables))
	for i, p := range playables {
		p.Unlocked = level >= p.UnlockLevel
		out[i] = p
	}
	return out
}
