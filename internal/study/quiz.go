package study

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// QuizItem is one quiz entry exactly as the model produced it. The prompt asks
// for {question, options, answer}; the shape is not checked, so fields of any
// type, extra or missing, reach the client unchanged.
type QuizItem = json.RawMessage

// ParseStage records which attempt produced a parsed quiz.
type ParseStage string

const (
	ParseDirect      ParseStage = "direct"
	ParseBracketSpan ParseStage = "bracket_span"
)

// QuizParseError is returned when neither parse attempt yields a JSON array.
type QuizParseError struct {
	Err error
}

func (e *QuizParseError) Error() string {
	if e.Err == nil {
		return "model did not return valid JSON"
	}
	return fmt.Sprintf("model did not return valid JSON: %v", e.Err)
}

func (e *QuizParseError) Unwrap() error { return e.Err }

var errNoArray = errors.New("no JSON array found")

// bracketSpan matches from the first '[' through the last ']', across lines.
var bracketSpan = regexp.MustCompile(`(?s)\[.*\]`)

// ParseQuiz decodes a quiz from a raw completion in two stages: first the whole
// trimmed text, then the widest bracketed span inside it. The only requirement
// is a JSON array; its items are not validated.
func ParseQuiz(completion string) ([]QuizItem, ParseStage, error) {
	raw := strings.TrimSpace(completion)

	var quiz []QuizItem
	if err := json.Unmarshal([]byte(raw), &quiz); err == nil {
		return nonNil(quiz), ParseDirect, nil
	}

	span := bracketSpan.FindString(raw)
	if span == "" {
		return nil, "", &QuizParseError{Err: errNoArray}
	}
	quiz = nil
	if err := json.Unmarshal([]byte(span), &quiz); err != nil {
		return nil, "", &QuizParseError{Err: err}
	}
	return nonNil(quiz), ParseBracketSpan, nil
}

// nonNil keeps a decoded "null" or "[]" serialising as an empty array.
func nonNil(quiz []QuizItem) []QuizItem {
	if quiz == nil {
		return []QuizItem{}
	}
	return quiz
}
