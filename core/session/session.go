// Package session bundles the per-user stores of one signed-in session.
package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/analytics"
	"github.com/trezcool/ecoquest/core/chat"
	"github.com/trezcool/ecoquest/core/content"
	"github.com/trezcool/ecoquest/core/game"
	"github.com/trezcool/ecoquest/core/goal"
	"github.com/trezcool/ecoquest/core/leaderboard"
	"github.com/trezcool/ecoquest/core/overview"
	"github.com/trezcool/ecoquest/core/photo"
	"github.com/trezcool/ecoquest/core/quiz"
	"github.com/trezcool/ecoquest/core/records"
	"github.com/trezcool/ecoquest/core/seed"
	"github.com/trezcool/ecoquest/core/student"
	"github.com/trezcool/ecoquest/core/tree"
	"github.com/trezcool/ecoquest/core/user"
)

// Session owns every panel store of one signed-in user. Student sessions get the
// student panels, teacher sessions the teacher panels; the others are nil.
type Session struct {
	ID        string
	UserID    string
	Role      string
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time

	limiter *rate.Limiter
	mock    overview.Mock

	// student panels
	Goals       *goal.Service
	Trees       *tree.Service
	Photos      *photo.Service
	Leaderboard *leaderboard.Leaderboard
	Chat        *chat.Conversation

	// teacher panels
	Quizzes   *quiz.Service
	Games     *game.Service
	Students  *student.Service
	Analytics *analytics.Service
	Content   *content.Service
}

func newSession(id string, usr user.User, data *seed.Data, opts Options, now time.Time) *Session {
	s := &Session{
		ID:        id,
		UserID:    usr.ID,
		Role:      usr.Role,
		CreatedAt: now,
		lastSeen:  now,
		limiter:   rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		mock:      data.Overview,
	}
	deps := opts.Deps

	if usr.IsStudent() {
		s.Goals = goal.NewService(deps, data.Goals...)
		s.Trees = tree.NewService(deps, data.Trees...)
		s.Photos = photo.NewService(deps, data.Photos...)
		s.Leaderboard = leaderboard.New(data.Leaderboard)

		chatOpts := []chat.Option{chat.WithReplyDelay(opts.ReplyDelay), chat.WithClock(deps.Now)}
		if opts.OnReply != nil {
			chatOpts = append(chatOpts, chat.WithOnReply(opts.OnReply))
		}
		s.Chat = chat.NewConversation(chatOpts...)
		_, _ = s.Chat.Append(chat.SenderAssistant, chat.Greeting(usr.Name))
		return s
	}

	s.Quizzes = quiz.NewService(deps, data.QuestionBanks, data.Quizzes...)
	s.Games = game.NewService(deps, data.Games...)
	s.Students = student.NewService(deps, opts.Mailer, data.Students...)
	s.Analytics = analytics.NewService(data.Analytics, deps.Now)
	s.Content = content.NewService(data.Content, deps.Validate, deps.Now)
	return s
}

// Allow reports whether one more rate-limited request may go through now.
func (s *Session) Allow() bool {
	return s.limiter.Allow()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) idleSince(cutoff time.Time) bool {
	return s.LastSeen().Before(cutoff)
}

// close discards the session state; pending chat replies are cancelled.
func (s *Session) close() {
	if s.Chat != nil {
		s.Chat.Close()
	}
}

// StudentOverview builds the student dashboard overview for usr from this session's panels.
func (s *Session) StudentOverview(usr user.User) overview.StudentOverview {
	return overview.Student(s.mock.Student, overview.StudentLive{
		Name:           usr.Name,
		AgeGroup:       usr.AgeGroup,
		Level:          usr.Level,
		XP:             usr.XP,
		PhotosCaptured: s.Photos.Stats().Total,
		TreesPlanted:   s.Trees.Stats().Total,
		GoalsCompleted: s.Goals.Stats().Completed,
	})
}

func (s *Session) TeacherOverview(usr user.User) overview.TeacherOverview {
	qs := s.Quizzes.Stats()
	return overview.Teacher(s.mock.Teacher, overview.TeacherLive{
		Name:          usr.Name,
		ClassCode:     usr.TeacherCode,
		TotalStudents: s.Students.Stats().Total,
		ActiveQuizzes: qs.Active,
		AverageScore:  qs.AvgScore,
	})
}

// ClassCode is the teacher's class code, or the seeded one.
func (s *Session) ClassCode(usr user.User) string {
	if usr.TeacherCode != "" {
		return usr.TeacherCode
	}
	return s.mock.Teacher.ClassCode
}

// Options configure the sessions a Registry opens.
type Options struct {
	Deps       records.Deps
	Mailer     core.EmailService
	ReplyDelay time.Duration
	RateLimit  rate.Limit
	RateBurst  int
	OnReply    func(chat.Message)
}
