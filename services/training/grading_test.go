package training

import (
	"context"
	"testing"

	trainingRepo "veritek/database/repository/training"
	"veritek/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubRepo serves a fixed module set without Mongo.
type stubRepo struct {
	modules map[string]models.TrainingModule
}

func (r *stubRepo) GetAll(_ context.Context) ([]models.TrainingModule, error) {
	var all []models.TrainingModule
	for _, m := range r.modules {
		all = append(all, m)
	}
	return all, nil
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*models.TrainingModule, error) {
	m, ok := r.modules[id]
	if !ok {
		return nil, trainingRepo.ErrModuleNotFound
	}
	return &m, nil
}

func (r *stubRepo) Upsert(_ context.Context, module models.TrainingModule) error {
	r.modules[module.ID] = module
	return nil
}

func fixtureService() *DefaultTrainingService {
	module := models.TrainingModule{
		ID:       "machine-safety",
		Title:    "Machine Safety Fundamentals",
		Duration: "4 hours",
		Chapters: []models.Chapter{
			{
				Number: 1,
				Title:  "Introduction",
				Questions: []models.Question{
					{
						Type:        models.QuestionMultipleChoice,
						Question:    "Which measure sits highest in the hierarchy of controls?",
						Options:     []string{"PPE", "Elimination", "Signs"},
						Correct:     1,
						Explanation: "Elimination removes the hazard entirely.",
					},
					{
						Type:        models.QuestionFillInBlank,
						Question:    "The machinery risk assessment standard is ISO _____.",
						Answers:     []string{"12100"},
						Explanation: "ISO 12100 defines the process.",
						FlexibleAnswers: []models.AnswerPattern{
							{Pattern: `^iso\s*`, Replacement: ""},
						},
					},
				},
			},
		},
	}
	return &DefaultTrainingService{
		Repo:   &stubRepo{modules: map[string]models.TrainingModule{module.ID: module}},
		Logger: zap.NewNop(),
	}
}

func intPtr(i int) *int { return &i }

func TestGradeMultipleChoice(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()

	tests := []struct {
		name     string
		selected *int
		correct  bool
	}{
		{"correct option", intPtr(1), true},
		{"wrong option", intPtr(0), false},
		{"no selection", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Grade(ctx, models.GradeRequest{
				ModuleID:      "machine-safety",
				Chapter:       1,
				Question:      0,
				SelectedIndex: tt.selected,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.correct, result.Correct)
			assert.Equal(t, "Elimination", result.CorrectAnswer)
			assert.NotEmpty(t, result.Explanation)
		})
	}
}

func TestGradeFillInBlank(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()

	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"exact", "12100", true},
		{"case and whitespace", "  12100 ", true},
		{"flexible prefix", "ISO 12100", true},
		{"flexible prefix no space", "iso12100", true},
		{"wrong number", "13849", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Grade(ctx, models.GradeRequest{
				ModuleID: "machine-safety",
				Chapter:  1,
				Question: 1,
				Answer:   tt.answer,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.correct, result.Correct)
			assert.Equal(t, "12100", result.CorrectAnswer)
		})
	}
}

func TestGradeUnknownTargets(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()

	_, err := svc.Grade(ctx, models.GradeRequest{ModuleID: "nope", Chapter: 1})
	assert.ErrorIs(t, err, trainingRepo.ErrModuleNotFound)

	_, err = svc.Grade(ctx, models.GradeRequest{ModuleID: "machine-safety", Chapter: 9})
	assert.ErrorIs(t, err, ErrChapterNotFound)

	_, err = svc.Grade(ctx, models.GradeRequest{ModuleID: "machine-safety", Chapter: 1, Question: 5})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestListAndChapterLookup(t *testing.T) {
	svc := fixtureService()
	ctx := context.Background()

	summaries, err := svc.ListModules(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "machine-safety", summaries[0].ID)
	assert.Equal(t, 1, summaries[0].Chapters)

	chapter, err := svc.GetChapter(ctx, "machine-safety", 1)
	require.NoError(t, err)
	assert.Equal(t, "Introduction", chapter.Title)

	_, err = svc.GetChapter(ctx, "machine-safety", 2)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestGradeUnknownQuestionType(t *testing.T) {
	svc := fixtureService()
	module := svc.Repo.(*stubRepo).modules["machine-safety"]
	module.Chapters[0].Questions = append(module.Chapters[0].Questions, models.Question{Type: "essay"})
	svc.Repo.(*stubRepo).modules["machine-safety"] = module

	_, err := svc.Grade(context.Background(), models.GradeRequest{
		ModuleID: "machine-safety",
		Chapter:  1,
		Question: 2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown question type")
}
