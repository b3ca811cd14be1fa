package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAnswerSheetUnmarshalNormalizesScalars(t *testing.T) {
	var sheet AnswerSheet
	if err := json.Unmarshal([]byte(`{"1": 11, "2": "21", "3": null, "4": "abc", "5": -3}`), &sheet); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(sheet) != 4 {
		t.Fatalf("expected null entries skipped, got %v", sheet)
	}
	if sheet["1"] != "11" || sheet["2"] != "21" || sheet["4"] != "abc" || sheet["5"] != "-3" {
		t.Fatalf("unexpected sheet %v", sheet)
	}

	if id, ok := sheet.ChoiceFor("1"); !ok || id != 11 {
		t.Fatalf("expected choice 11, got %d ok=%v", id, ok)
	}
	if _, ok := sheet.ChoiceFor("4"); ok {
		t.Fatalf("non-numeric reference must not resolve")
	}
	if _, ok := sheet.ChoiceFor("5"); ok {
		t.Fatalf("negative reference must not resolve")
	}
	if _, ok := sheet.ChoiceFor("9"); ok {
		t.Fatalf("missing key must not resolve")
	}
}

func TestAnswerSheetUnmarshalRejectsNonObject(t *testing.T) {
	var sheet AnswerSheet
	err := json.Unmarshal([]byte(`[1, 2]`), &sheet)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Fields["answers"] == "" {
		t.Fatalf("expected validation error on answers, got %v", err)
	}

	if err := json.Unmarshal([]byte(`null`), &sheet); err != nil || sheet == nil || len(sheet) != 0 {
		t.Fatalf("null should become an empty sheet, got %v err=%v", sheet, err)
	}
}

func TestParseChoiceID(t *testing.T) {
	cases := map[string]bool{"1": true, " 42 ": true, "0": false, "-1": false, "1.5": false, "": false, "9223372036854775808": false}
	for raw, want := range cases {
		if _, ok := ParseChoiceID(raw); ok != want {
			t.Fatalf("ParseChoiceID(%q) = %v, want %v", raw, ok, want)
		}
	}
}

func TestBandFor(t *testing.T) {
	cases := []struct {
		pct  float64
		want ScoreBand
	}{
		{100, BandExcellent},
		{90, BandExcellent},
		{89.99, BandGood},
		{70, BandGood},
		{69.99, BandAverage},
		{50, BandAverage},
		{49.99, BandPoor},
		{0, BandPoor},
	}
	for _, tc := range cases {
		if got := BandFor(tc.pct); got != tc.want {
			t.Fatalf("BandFor(%v) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.0 / 45.0 * 100); got != 22.22 {
		t.Fatalf("expected 22.22, got %v", got)
	}
	if got := Round2(2.0 / 3.0 * 100); got != 66.67 {
		t.Fatalf("expected 66.67, got %v", got)
	}
}

func TestCorrectChoicePrefersLowestID(t *testing.T) {
	q := Question{Choices: []Choice{
		{ID: 9, IsCorrect: true},
		{ID: 3, IsCorrect: true},
		{ID: 1},
	}}
	c, ok := q.CorrectChoice()
	if !ok || c.ID != 3 {
		t.Fatalf("expected choice 3, got %+v ok=%v", c, ok)
	}

	if _, ok := (Question{Choices: []Choice{{ID: 1}}}).CorrectChoice(); ok {
		t.Fatalf("expected no correct choice")
	}
}

func TestUsernameDisplay(t *testing.T) {
	if got := (QuizAttempt{Username: "zed", LinkedUsername: "alice"}).UsernameDisplay(); got != "zed" {
		t.Fatalf("expected recorded name, got %q", got)
	}
	if got := (QuizAttempt{LinkedUsername: "alice"}).UsernameDisplay(); got != "alice" {
		t.Fatalf("expected linked name, got %q", got)
	}
	if got := (QuizAttempt{}).UsernameDisplay(); got != AnonymousUsername {
		t.Fatalf("expected anonymous, got %q", got)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("invalid input").Add("b", "bad").Add("a", "missing")
	if got := err.Error(); got != "invalid input (a: missing; b: bad)" {
		t.Fatalf("unexpected message %q", got)
	}
	if NewValidationError("empty").OrNil() != nil {
		t.Fatalf("expected nil for an error without fields")
	}
}
