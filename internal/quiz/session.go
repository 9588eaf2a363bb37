package quiz

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mathmedha/medha/internal/problemgen"
	"github.com/mathmedha/medha/internal/rewards"
	"github.com/mathmedha/medha/internal/settings"
	"github.com/mathmedha/medha/internal/speech"
	"github.com/mathmedha/medha/internal/store"
)

// WelcomePhase is the state of the one-shot welcome overlay.
type WelcomePhase int

const (
	WelcomeShown  WelcomePhase = iota // until the first answer is submitted
	WelcomeFading                     // fade started by the first submit
	WelcomeGone                       // fade finished; never shown again
)

// WelcomeFadeDuration is how long the welcome overlay takes to fade out.
const WelcomeFadeDuration = time.Second

// Options configures a Session. Zero values get working defaults.
type Options struct {
	SessionID string
	Duration  time.Duration
	Generator problemgen.Generator
	Board     *rewards.Board
	Rewards   *rewards.Service
	Events    store.EventRepo
	Settings  *settings.Settings
	Speaker   speech.Speaker
	OnResults ResultsHandler
	Logger    *slog.Logger
}

// Outcome describes one judged answer and everything it caused.
type Outcome struct {
	Question problemgen.Question
	Answer   string
	Correct  bool
	Events   []Event

	// Rewards placed on the map by this answer.
	Badges  []rewards.PlacedBadge
	Stars   []rewards.PlacedStar
	Planets []rewards.PlacedPlanet

	// WelcomeFadeStarted is set on the first submit of the journey.
	WelcomeFadeStarted bool
}

// Session is the controller of one journey.
type Session struct {
	id        string
	gen       problemgen.Generator
	tracker   *Tracker
	board     *rewards.Board
	rewards   *rewards.Service
	events    store.EventRepo
	settings  *settings.Settings
	speaker   speech.Speaker
	onResults ResultsHandler
	log       *slog.Logger

	countdown *Countdown
	question  problemgen.Question
	buffer    AnswerBuffer
	welcome   WelcomePhase
	last      *Outcome

	started     bool
	ended       bool
	tornDown    bool
	unsubscribe func()
}

// New creates a Session with its first question ready. Call Start to begin.
func New(opts Options) *Session {
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Generator == nil {
		opts.Generator = problemgen.New(problemgen.DefaultGenConfig())
	}
	if opts.Board == nil {
		opts.Board = rewards.NewBoard(rewards.DefaultMapWidth, rewards.DefaultMapHeight, nil)
	}
	if opts.Rewards == nil {
		opts.Rewards = rewards.NewService(opts.Events)
	}
	if opts.Settings == nil {
		opts.Settings = settings.New(settings.Default())
	}
	if opts.Speaker == nil {
		opts.Speaker = speech.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Session{
		id:        opts.SessionID,
		gen:       opts.Generator,
		tracker:   NewTracker(len(opts.Board.Planets())),
		board:     opts.Board,
		rewards:   opts.Rewards,
		events:    opts.Events,
		settings:  opts.Settings,
		speaker:   opts.Speaker,
		onResults: opts.OnResults,
		log:       opts.Logger.With("session", opts.SessionID),
		countdown: NewCountdown(opts.Duration),
		question:  opts.Generator.Next(),
	}
}

// Start records the journey start, begins listening to settings changes and
// reads the first question aloud. Calling it again does nothing.
func (s *Session) Start() {
	if s.started || s.tornDown {
		return
	}
	s.started = true
	s.rewards.ResetSession()

	s.unsubscribe = s.settings.Subscribe(func(st settings.State) {
		if st.Muted {
			s.speaker.Cancel()
		}
	})

	if s.events != nil {
		err := s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: s.id,
			Action:    "start",
		})
		if err != nil {
			s.log.Warn("record session start", "err", err)
		}
	}

	s.log.Info("journey started", "seconds", s.countdown.Total())
	s.announce()
}

// AppendChar adds r to the answer buffer. Characters that cannot be part
// of a number, a second decimal point, and a minus sign anywhere but first
// are ignored silently.
func (s *Session) AppendChar(r rune) bool {
	if !s.active() {
		return false
	}
	return s.buffer.Append(r)
}

// DeleteLastChar removes the last character of the answer buffer.
func (s *Session) DeleteLastChar() bool {
	if !s.active() {
		return false
	}
	return s.buffer.Backspace()
}

// Submit judges the answer buffer. It is a no-op, returning false, when the
// buffer is empty or the journey is over. Otherwise the answer is judged,
// progress and rewards are updated, the next question is drawn, the buffer
// is cleared and the new question is read aloud.
func (s *Session) Submit() (Outcome, bool) {
	if !s.active() || s.buffer.Empty() {
		return Outcome{}, false
	}

	answer := s.buffer.String()
	out := Outcome{
		Question: s.question,
		Answer:   answer,
		Correct:  problemgen.CheckAnswer(s.question, answer),
	}
	out.Events = s.tracker.Attempt(out.Correct)
	s.apply(&out)

	if s.welcome == WelcomeShown {
		s.welcome = WelcomeFading
		out.WelcomeFadeStarted = true
	}

	s.log.Debug("answer judged",
		"question", out.Question.Display,
		"answer", answer,
		"correct", out.Correct,
		"events", len(out.Events),
	)

	s.question = s.gen.Next()
	s.buffer.Clear()
	s.last = &out
	s.announce()
	return out, true
}

// Press handles one logical key. The bool result is true when the key
// submitted an answer that was judged.
func (s *Session) Press(k Key) (Outcome, bool) {
	switch k.Kind {
	case KeySubmit:
		return s.Submit()
	case KeyDelete:
		s.DeleteLastChar()
	default:
		s.AppendChar(k.Char)
	}
	return Outcome{}, false
}

// FinishWelcomeFade completes the welcome overlay fade. It reports whether
// a fade was in progress.
func (s *Session) FinishWelcomeFade() bool {
	if s.welcome != WelcomeFading {
		return false
	}
	s.welcome = WelcomeGone
	return true
}

// Tick advances the countdown by one second. When it reaches zero the
// journey ends and the results handler runs, exactly once. It returns true
// for that final tick only.
func (s *Session) Tick() bool {
	if s.ended || s.tornDown {
		return false
	}
	if !s.countdown.Tick() {
		return false
	}
	s.finish()
	return true
}

// Teardown abandons the journey without handing off results: the countdown
// stops and speech is cancelled. It is safe to call more than once.
func (s *Session) Teardown() {
	if s.ended || s.tornDown {
		return
	}
	s.tornDown = true
	s.countdown.Stop()
	s.speaker.Cancel()
	s.stopListening()
	s.log.Info("journey abandoned",
		"remaining", s.countdown.Remaining(),
		"attempted", s.tracker.TotalAttempted(),
	)
}

// Resize changes the star-map canvas used for future placements.
func (s *Session) Resize(width, height int) {
	s.board.Resize(float64(width), float64(height))
}

// Summary returns the journey's results so far.
func (s *Session) Summary() Summary {
	return Summary{
		SessionID:       s.id,
		Duration:        time.Duration(s.countdown.Elapsed()) * time.Second,
		TotalAttempted:  s.tracker.TotalAttempted(),
		TotalCorrect:    s.tracker.TotalCorrect(),
		BestStreak:      s.tracker.BestStreak(),
		Stars:           s.tracker.Stars(),
		Badges:          s.tracker.Badges(),
		PlanetsRevealed: s.tracker.Revealed(),
		Celebrating:     s.tracker.Celebrating(),
	}
}

func (s *Session) ID() string                      { return s.id }
func (s *Session) Question() problemgen.Question   { return s.question }
func (s *Session) Buffer() string                  { return s.buffer.String() }
func (s *Session) Tracker() *Tracker               { return s.tracker }
func (s *Session) Board() *rewards.Board           { return s.board }
func (s *Session) Countdown() *Countdown           { return s.countdown }
func (s *Session) Settings() *settings.Settings    { return s.settings }
func (s *Session) Welcome() WelcomePhase           { return s.welcome }
func (s *Session) Ended() bool                     { return s.ended }
func (s *Session) TornDown() bool                  { return s.tornDown }
func (s *Session) SessionRewards() []rewards.Award { return s.rewards.SessionRewards }

// LastOutcome returns the most recent judged answer, or nil.
func (s *Session) LastOutcome() *Outcome { return s.last }

func (s *Session) active() bool {
	return !s.ended && !s.tornDown
}

// apply places the rewards named by the tracker's events and records them.
func (s *Session) apply(out *Outcome) {
	ctx := context.Background()
	for _, e := range out.Events {
		switch e.Kind {
		case BadgeGranted:
			pb := s.board.GrantBadge()
			out.Badges = append(out.Badges, pb)
			s.rewards.AwardBadge(ctx, pb.Kind, e.Index, s.id)
			if pb.Exhausted {
				s.log.Debug("badge placement exhausted", "badge", pb.Kind.ID)
			}
		case StarGranted:
			out.Stars = append(out.Stars, s.board.GrantStar())
			s.rewards.AwardStar(ctx, e.Index*rewards.StarEvery, s.id)
		case PlanetRevealed:
			out.Planets = append(out.Planets, s.board.RevealTo(e.Index+1)...)
			s.rewards.AwardPlanet(ctx, e.Index, s.id)
		case CelebrationEntered:
			s.rewards.AwardCelebration(ctx, s.id)
			s.log.Info("celebration mode entered", "correct", s.tracker.TotalCorrect())
		}
	}
	// The board always mirrors the tracker, even if an event was missed.
	s.board.RevealTo(s.tracker.Revealed())
}

// announce reads the current question aloud when speech is available and
// not muted.
func (s *Session) announce() {
	if !s.active() || s.settings.Muted() || !s.speaker.Available() {
		return
	}
	if err := s.speaker.Speak(s.question.Spoken); err != nil {
		s.log.Debug("speak question", "err", err)
	}
}

func (s *Session) finish() {
	s.ended = true
	s.speaker.Cancel()
	s.stopListening()

	sum := s.Summary()
	ctx := context.Background()
	if sum.TotalAttempted > 0 {
		s.rewards.AwardSession(ctx, sum.Accuracy(), s.id)
	}
	if s.events != nil {
		err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:    s.id,
			Action:       "end",
			Attempted:    sum.TotalAttempted,
			Correct:      sum.TotalCorrect,
			BestStreak:   sum.BestStreak,
			Stars:        sum.Stars,
			Badges:       sum.Badges,
			Planets:      sum.PlanetsRevealed,
			DurationSecs: int(sum.Duration / time.Second),
		})
		if err != nil {
			s.log.Warn("record session end", "err", err)
		}
	}

	s.log.Info("journey finished",
		"attempted", sum.TotalAttempted,
		"correct", sum.TotalCorrect,
		"best_streak", sum.BestStreak,
		"stars", sum.Stars,
		"badges", sum.Badges,
		"planets", sum.PlanetsRevealed,
	)

	if s.onResults != nil {
		s.onResults(sum)
	}
}

func (s *Session) stopListening() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
