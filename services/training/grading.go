// File: services/training/grading.go
package training

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"veritek/models"

	"go.uber.org/zap"
)

// ErrQuestionNotFound is returned when the grade request points at a
// question index the chapter doesn't have.
var ErrQuestionNotFound = errors.New("question not found")

var answerWhitespaceRe = regexp.MustCompile(`\s+`)

// normalizeAnswer lowercases, trims and collapses whitespace so free-text
// answers compare on content rather than formatting.
func normalizeAnswer(s string) string {
	return strings.TrimSpace(answerWhitespaceRe.ReplaceAllString(strings.ToLower(s), " "))
}

// Grade scores one submitted quiz answer. Multiple-choice grades by option
// index; fill-in-blank normalizes the submission, applies the question's
// flexibleAnswers rewrites, then compares against the accepted answers
// normalized the same way.
func (s *DefaultTrainingService) Grade(ctx context.Context, req models.GradeRequest) (*models.GradeResult, error) {
	chapter, err := s.GetChapter(ctx, req.ModuleID, req.Chapter)
	if err != nil {
		return nil, err
	}
	if req.Question < 0 || req.Question >= len(chapter.Questions) {
		return nil, ErrQuestionNotFound
	}
	q := chapter.Questions[req.Question]

	switch q.Type {
	case models.QuestionMultipleChoice:
		result := &models.GradeResult{
			Correct:     req.SelectedIndex != nil && *req.SelectedIndex == q.Correct,
			Explanation: q.Explanation,
		}
		if q.Correct >= 0 && q.Correct < len(q.Options) {
			result.CorrectAnswer = q.Options[q.Correct]
		}
		return result, nil

	case models.QuestionFillInBlank:
		answer := normalizeAnswer(req.Answer)
		for _, p := range q.FlexibleAnswers {
			re, err := regexp.Compile(p.Pattern)
			if err != nil {
				s.Logger.Warn("Skipping bad flexible-answer pattern",
					zap.String("module", req.ModuleID), zap.String("pattern", p.Pattern))
				continue
			}
			answer = re.ReplaceAllString(answer, p.Replacement)
		}

		result := &models.GradeResult{Explanation: q.Explanation}
		if len(q.Answers) > 0 {
			result.CorrectAnswer = q.Answers[0]
		}
		for _, accepted := range q.Answers {
			if answer == normalizeAnswer(accepted) {
				result.Correct = true
				break
			}
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unknown question type %q", q.Type)
	}
}
