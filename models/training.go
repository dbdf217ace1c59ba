package models

// Question types.
const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionFillInBlank    = "fill-in-blank"
)

// AnswerPattern is a regex rewrite applied to a free-text answer before
// comparison, so close-enough phrasings still grade as correct.
type AnswerPattern struct {
	Pattern     string `bson:"pattern" json:"pattern" yaml:"pattern"`
	Replacement string `bson:"replacement" json:"replacement" yaml:"replacement"`
}

// Question is one quiz item attached to a chapter.
type Question struct {
	Type            string          `bson:"type" json:"type" yaml:"type"`
	Question        string          `bson:"question" json:"question" yaml:"question"`
	Options         []string        `bson:"options,omitempty" json:"options,omitempty" yaml:"options,omitempty"`
	Correct         int             `bson:"correct" json:"correct" yaml:"correct"`
	Answers         []string        `bson:"answers,omitempty" json:"answers,omitempty" yaml:"answers,omitempty"`
	Explanation     string          `bson:"explanation" json:"explanation" yaml:"explanation"`
	FlexibleAnswers []AnswerPattern `bson:"flexibleAnswers,omitempty" json:"flexibleAnswers,omitempty" yaml:"flexibleAnswers,omitempty"`
}

// Chapter is one unit of a training module.
type Chapter struct {
	Number             int        `bson:"number" json:"number" yaml:"number"`
	Title              string     `bson:"title" json:"title" yaml:"title"`
	LearningObjectives []string   `bson:"learningObjectives" json:"learningObjectives" yaml:"learningObjectives"`
	Content            string     `bson:"content" json:"content" yaml:"content"`
	Questions          []Question `bson:"questions" json:"questions" yaml:"questions"`
}

// TrainingModule is an immutable training course rendered by the website's
// training pages.
type TrainingModule struct {
	ID       string    `bson:"id" json:"id" yaml:"id"`
	Title    string    `bson:"title" json:"title" yaml:"title"`
	Duration string    `bson:"duration" json:"duration" yaml:"duration"`
	Chapters []Chapter `bson:"chapters" json:"chapters" yaml:"chapters"`
}

// ModuleSummary is the listing shape for the training index page.
type ModuleSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Chapters int    `json:"chapters"`
}

// GradeRequest is one submitted quiz answer.
type GradeRequest struct {
	ModuleID      string `json:"moduleId" binding:"required"`
	Chapter       int    `json:"chapter" binding:"required"`
	Question      int    `json:"question"`
	SelectedIndex *int   `json:"selectedIndex,omitempty"`
	Answer        string `json:"answer,omitempty"`
}

// GradeResult is the outcome of grading one answer.
type GradeResult struct {
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation,omitempty"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
}
