package study

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxQuestions caps the number of questions returned to the client.
	MaxQuestions = 20
	// minQuestionLength is exclusive: a question must be longer than this.
	minQuestionLength = 10
)

// ErrNoQuestions is returned when no line of the completion survives cleaning.
var ErrNoQuestions = errors.New("No questions could be generated.")

var enumerationPrefix = regexp.MustCompile(`^\d+[.)]\s*`)

// NormalizeQuestions turns a raw completion into an ordered question list.
// Each line is trimmed and stripped of a leading "1." or "2)" marker; lines of
// 10 characters or fewer are dropped and at most MaxQuestions are kept.
func NormalizeQuestions(completion string) ([]string, error) {
	var questions []string
	for _, line := range strings.Split(strings.TrimSpace(completion), "\n") {
		line = strings.TrimSpace(line)
		line = enumerationPrefix.ReplaceAllString(line, "")
		if utf8.RuneCountInString(line) <= minQuestionLength {
			continue
		}
		questions = append(questions, line)
		if len(questions) == MaxQuestions {
			break
		}
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// NormalizeSummary trims surrounding whitespace from a summary completion.
func NormalizeSummary(completion string) string {
	return strings.TrimSpace(completion)
}
