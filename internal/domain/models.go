package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Choice is a possible answer for a question.
type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
}

// Question is a multiple-choice question. Choices are ordered by ID.
type Question struct {
	ID         int64      `json:"id"`
	Text       string     `json:"text"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Points     int        `json:"points"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	Choices    []Choice   `json:"choices"`
}

// CorrectChoice returns the choice flagged correct with the lowest ID.
func (q Question) CorrectChoice() (Choice, bool) {
	var (
		found Choice
		ok    bool
	)
	for _, c := range q.Choices {
		if c.IsCorrect && (!ok || c.ID < found.ID) {
			found, ok = c, true
		}
	}
	return found, ok
}

// Choice looks up one of the question's own choices.
func (q Question) Choice(id int64) (Choice, bool) {
	for _, c := range q.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// Key is the string form used to index answer sheets.
func (q Question) Key() string {
	return strconv.FormatInt(q.ID, 10)
}

// PublicChoice is the client projection of a choice; it never carries correctness.
type PublicChoice struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// PublicQuestion is the client projection of a question.
type PublicQuestion struct {
	ID         int64          `json:"id"`
	Text       string         `json:"text"`
	Choices    []PublicChoice `json:"choices"`
	Category   string         `json:"category"`
	Difficulty Difficulty     `json:"difficulty"`
	Points     int            `json:"points"`
}

// Public strips correctness flags.
func (q Question) Public() PublicQuestion {
	choices := make([]PublicChoice, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, PublicChoice{ID: c.ID, Text: c.Text})
	}
	return PublicQuestion{
		ID:         q.ID,
		Text:       q.Text,
		Choices:    choices,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		Points:     q.Points,
	}
}

// QuizConfigID is the fixed key of the singleton configuration row.
const QuizConfigID int64 = 1

// QuizConfig holds the global quiz settings. TimerDuration is in minutes.
type QuizConfig struct {
	ID                     int64     `json:"id"`
	TimerDuration          int       `json:"timer_duration"`
	IsActive               bool      `json:"is_active"`
	MaxAttempts            int       `json:"max_attempts"`
	ShowResultsImmediately bool      `json:"show_results_immediately"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// DefaultQuizConfig is what gets stored when the config is read before it exists.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		ID:                     QuizConfigID,
		TimerDuration:          10,
		IsActive:               true,
		MaxAttempts:            1,
		ShowResultsImmediately: true,
	}
}

// ConfigPatch lists the updatable config fields; nil means "leave unchanged".
type ConfigPatch struct {
	TimerDuration          *int  `json:"timer_duration" validate:"omitempty,min=1,max=1440"`
	IsActive               *bool `json:"is_active"`
	MaxAttempts            *int  `json:"max_attempts" validate:"omitempty,min=1,max=1000"`
	ShowResultsImmediately *bool `json:"show_results_immediately"`
}

// Apply copies the supplied fields onto cfg.
func (p ConfigPatch) Apply(cfg QuizConfig) QuizConfig {
	if p.TimerDuration != nil {
		cfg.TimerDuration = *p.TimerDuration
	}
	if p.IsActive != nil {
		cfg.IsActive = *p.IsActive
	}
	if p.MaxAttempts != nil {
		cfg.MaxAttempts = *p.MaxAttempts
	}
	if p.ShowResultsImmediately != nil {
		cfg.ShowResultsImmediately = *p.ShowResultsImmediately
	}
	return cfg
}

// AnswerSheet maps a question ID (decimal string) to the submitted choice reference.
// References are kept as submitted so a malformed one can still be recorded and shown.
type AnswerSheet map[string]string

// UnmarshalJSON accepts any scalar per key: numbers and strings are both common in clients.
func (a *AnswerSheet) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = AnswerSheet{}
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return NewValidationError("invalid answers").Add("answers", "must be an object mapping question IDs to choice IDs")
	}
	sheet := make(AnswerSheet, len(raw))
	for key, value := range raw {
		value = bytes.TrimSpace(value)
		switch {
		case len(value) == 0 || bytes.Equal(value, []byte("null")):
			continue
		case value[0] == '"':
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return NewValidationError("invalid answers").Add("answers."+key, "must be a choice ID")
			}
			sheet[key] = s
		default:
			sheet[key] = string(value)
		}
	}
	*a = sheet
	return nil
}

// ChoiceFor returns the parsed choice ID submitted for the question, if it is a valid ID.
func (a AnswerSheet) ChoiceFor(questionKey string) (int64, bool) {
	raw, ok := a[questionKey]
	if !ok {
		return 0, false
	}
	return ParseChoiceID(raw)
}

// ParseChoiceID parses a positive decimal identifier.
func ParseChoiceID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// AnonymousUsername is attributed when neither a username nor a caller is known.
const AnonymousUsername = "Anonymous"

// QuizAttempt is one completed, scored submission. It is never updated.
type QuizAttempt struct {
	ID             int64       `json:"id"`
	UserID         *int64      `json:"user"`
	Username       string      `json:"username"`
	SessionID      string      `json:"user_session"`
	Score          int         `json:"score"`
	TotalQuestions int         `json:"total_questions"`
	Percentage     float64     `json:"percentage"`
	TimeTaken      int         `json:"time_taken"`
	CompletedAt    time.Time   `json:"completed_at"`
	UserAnswers    AnswerSheet `json:"user_answers"`
	// LinkedUsername is the current username of UserID, filled on reads.
	LinkedUsername string `json:"-"`
}

// UsernameDisplay prefers the recorded username, then the linked account.
func (a QuizAttempt) UsernameDisplay() string {
	if a.Username != "" {
		return a.Username
	}
	if a.LinkedUsername != "" {
		return a.LinkedUsername
	}
	return AnonymousUsername
}

// User is a registered account.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	IsStaff      bool       `json:"is_staff"`
	IsActive     bool       `json:"is_active"`
	DateJoined   time.Time  `json:"date_joined"`
	LastLogin    *time.Time `json:"last_login"`
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
