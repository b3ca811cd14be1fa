package domain

import "time"

const (
	// NoAnswerText marks a question the submission left unanswered.
	NoAnswerText = "No answer"
	// MissingAnswerText marks a question that has no correct choice on record.
	MissingAnswerText = "Error loading answer"
)

// QuestionResult is the graded row for one active question.
type QuestionResult struct {
	QuestionID        int64  `json:"question_id"`
	QuestionText      string `json:"question_text"`
	UserAnswerID      *int64 `json:"user_answer_id"`
	UserAnswerText    string `json:"user_answer_text"`
	CorrectAnswerID   *int64 `json:"correct_answer_id"`
	CorrectAnswerText string `json:"correct_answer_text"`
	IsCorrect         bool   `json:"is_correct"`
	Points            int    `json:"points"`
	PointsEarned      int    `json:"points_earned"`
}

// SubmissionResult is returned to the client after grading.
type SubmissionResult struct {
	AttemptID      int64            `json:"attempt_id"`
	Username       string           `json:"username"`
	Score          int              `json:"score"`
	TotalPoints    int              `json:"total_points"`
	TotalQuestions int              `json:"total_questions"`
	Percentage     float64          `json:"percentage"`
	TimeTaken      int              `json:"time_taken"`
	CompletedAt    time.Time        `json:"completed_at"`
	Results        []QuestionResult `json:"results"`
}

// ScoreBand buckets an attempt by percentage.
type ScoreBand string

const (
	BandExcellent ScoreBand = "excellent"
	BandGood      ScoreBand = "good"
	BandAverage   ScoreBand = "average"
	BandPoor      ScoreBand = "poor"
)

// BandFor classifies a percentage: excellent [90,100], good [70,90), average [50,70), poor below 50.
func BandFor(percentage float64) ScoreBand {
	switch {
	case percentage >= 90:
		return BandExcellent
	case percentage >= 70:
		return BandGood
	case percentage >= 50:
		return BandAverage
	default:
		return BandPoor
	}
}

// ScoreDistribution counts attempts per band.
type ScoreDistribution struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Average   int `json:"average"`
	Poor      int `json:"poor"`
}

// Add counts one attempt in its band.
func (d *ScoreDistribution) Add(percentage float64) {
	switch BandFor(percentage) {
	case BandExcellent:
		d.Excellent++
	case BandGood:
		d.Good++
	case BandAverage:
		d.Average++
	default:
		d.Poor++
	}
}

// Total is the number of attempts counted.
func (d ScoreDistribution) Total() int {
	return d.Excellent + d.Good + d.Average + d.Poor
}

// AttemptSummary aggregates all recorded attempts.
type AttemptSummary struct {
	TotalAttempts        int               `json:"total_attempts"`
	AverageScore         float64           `json:"average_score"`
	AverageTimeTaken     float64           `json:"average_time_taken"`
	TotalActiveQuestions int               `json:"total_active_questions"`
	ScoreDistribution    ScoreDistribution `json:"score_distribution"`
}

// QuestionAccuracy reports how often a question was answered correctly.
// TotalAttempts is the count of every recorded attempt, not just the ones that saw the question.
type QuestionAccuracy struct {
	QuestionID       int64      `json:"question_id"`
	QuestionText     string     `json:"question_text"`
	Difficulty       Difficulty `json:"difficulty"`
	TotalAttempts    int        `json:"total_attempts"`
	CorrectAttempts  int        `json:"correct_attempts"`
	AnsweredAttempts int        `json:"answered_attempts"`
	Accuracy         float64    `json:"accuracy"`
}

// AttemptEvent is pushed to live feed subscribers when an attempt is recorded.
type AttemptEvent struct {
	AttemptID      int64     `json:"attempt_id"`
	Username       string    `json:"username"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	TimeTaken      int       `json:"time_taken"`
	Band           ScoreBand `json:"band"`
	CompletedAt    time.Time `json:"completed_at"`
}

// EventFor projects an attempt onto the feed payload.
func EventFor(a QuizAttempt) AttemptEvent {
	return AttemptEvent{
		AttemptID:      a.ID,
		Username:       a.UsernameDisplay(),
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		Percentage:     a.Percentage,
		TimeTaken:      a.TimeTaken,
		Band:           BandFor(a.Percentage),
		CompletedAt:    a.CompletedAt,
	}
}
