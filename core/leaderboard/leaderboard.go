// Package leaderboard ranks the signed-in student against the class.
package leaderboard

const (
	Overall = "overall"
	Weekly  = "weekly"
	Photos  = "photos"

	defaultAvatar = "earth"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Categories = []Category{
	{ID: Overall, Name: "Overall XP"},
	{ID: Weekly, Name: "This Week"},
	{ID: Photos, Name: "Photos Captured"},
}

type Entry struct {
	Rank          int    `json:"rank" yaml:"rank"`
	Name          string `json:"name" yaml:"name"`
	XP            int    `json:"xp,omitempty" yaml:"xp"`
	Count         int    `json:"count,omitempty" yaml:"count"`
	Avatar        string `json:"avatar" yaml:"avatar"`
	Level         int    `json:"level" yaml:"level"`
	Badge         string `json:"badge,omitempty" yaml:"badge"`
	IsCurrentUser bool   `json:"is_current_user,omitempty" yaml:"-"`
}

// Slot places the current user on a board. A nil XP means the user's own XP.
type Slot struct {
	Rank  int    `yaml:"rank"`
	XP    *int   `yaml:"xp"`
	Badge string `yaml:"badge"`
}

type Board struct {
	Entries []Entry `yaml:"entries"`
	You     *Slot   `yaml:"you"`
}

// Player is the current user as shown on a board.
type Player struct {
	Name   string
	Avatar string
	Level  int
	XP     int
}

type Rankings struct {
	Category string  `json:"category"`
	Entries  []Entry `json:"entries"`
	YourRank int     `json:"your_rank,omitempty"` // 0 when the user is not on the board
}

type Leaderboard struct {
	boards map[string]Board
}

func New(boards map[string]Board) *Leaderboard {
	return &Leaderboard{boards: boards}
}

// Rankings returns the board for category with the player spliced in.
// Unknown categories fall back to the overall board.
func (l *Leaderboard) Rankings(category string, p Player) Rankings {
	board, ok := l.boards[category]
	if !ok {
		category = Overall
		board = l.boards[Overall]
	}

	entries := make([]Entry, 0, len(board.Entries)+1)
	entries = append(entries, board.Entries...)
	r := Rankings{Category: category}
	if board.You != nil {
		entries = append(entries, p.entry(*board.You))
		r.YourRank = board.You.Rank
	}
	r.Entries = entries
	return r
}

func (p Player) entry(slot Slot) Entry {
	e := Entry{
		Rank:          slot.Rank,
		Name:          p.Name,
		XP:            p.XP,
		Avatar:        p.Avatar,
		Level:         p.Level,
		Badge:         slot.Badge,
		IsCurrentUser: true,
	}
	if slot.XP != nil {
		e.XP = *slot.XP
	}
	if e.Avatar == "" {
		e.Avatar = defaultAvatar
	}
	if e.Level < 1 {
		e.Level = 1
	}
	return e
}
