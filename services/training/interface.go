package training

import (
	"context"
	"time"

	trainingRepo "veritek/database/repository/training"
	"veritek/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TrainingService exposes the read-only training content consumed by the
// website's training pages, plus quiz grading.
type TrainingService interface {
	ListModules(ctx context.Context) ([]models.ModuleSummary, error)
	GetModule(ctx context.Context, id string) (*models.TrainingModule, error)
	GetChapter(ctx context.Context, id string, number int) (*models.Chapter, error)
	Grade(ctx context.Context, req models.GradeRequest) (*models.GradeResult, error)
	InvalidateCache(ctx context.Context) error
}

// DefaultTrainingService is the production implementation, reading module
// documents from Mongo through a Redis cache.
type DefaultTrainingService struct {
	Repo     trainingRepo.TrainingRepository
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}
