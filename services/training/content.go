// File: services/training/content.go
package training

import (
	"context"
	"encoding/json"
	"errors"

	"veritek/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const moduleCachePrefix = "training:module:"

// ErrChapterNotFound is returned when a module has no chapter with the
// requested number.
var ErrChapterNotFound = errors.New("chapter not found")

func moduleKey(id string) string {
	return moduleCachePrefix + id
}

// ListModules returns a summary of every training module.
func (s *DefaultTrainingService) ListModules(ctx context.Context) ([]models.ModuleSummary, error) {
	modules, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ModuleSummary, 0, len(modules))
	for _, m := range modules {
		summaries = append(summaries, models.ModuleSummary{
			ID:       m.ID,
			Title:    m.Title,
			Duration: m.Duration,
			Chapters: len(m.Chapters),
		})
	}
	return summaries, nil
}

// GetModule returns one training module, serving from the Redis cache when
// possible. A cache failure falls through to Mongo rather than erroring, and
// a nil Cache disables caching entirely.
func (s *DefaultTrainingService) GetModule(ctx context.Context, id string) (*models.TrainingModule, error) {
	if s.Cache == nil {
		return s.Repo.GetByID(ctx, id)
	}

	if data, err := s.Cache.Get(ctx, moduleKey(id)).Result(); err == nil {
		var module models.TrainingModule
		if err := json.Unmarshal([]byte(data), &module); err == nil {
			return &module, nil
		}
		s.Logger.Warn("Corrupt training module cache entry", zap.String("module", id))
	} else if err != redis.Nil {
		s.Logger.Warn("Training cache read failed", zap.Error(err))
	}

	module, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(module); err == nil {
		if err := s.Cache.Set(ctx, moduleKey(id), b, s.CacheTTL).Err(); err != nil {
			s.Logger.Warn("Training cache write failed", zap.Error(err))
		}
	}
	return module, nil
}

// GetChapter returns one chapter of a module by chapter number.
func (s *DefaultTrainingService) GetChapter(ctx context.Context, id string, number int) (*models.Chapter, error) {
	module, err := s.GetModule(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range module.Chapters {
		if module.Chapters[i].Number == number {
			return &module.Chapters[i], nil
		}
	}
	return nil, ErrChapterNotFound
}

// InvalidateCache drops every cached module so the next read hits Mongo.
// Used by the admin reload endpoint after content is re-seeded.
func (s *DefaultTrainingService) InvalidateCache(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	keys, err := s.Cache.Keys(ctx, moduleCachePrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.Cache.Del(ctx, keys...).Err()
}
