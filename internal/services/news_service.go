package services

import (
	"context"
	"errors"

	"shinaBack/internal/models"
)

type NewsStore interface {
	Create(ctx context.Context, article models.Article) (models.Article, error)
	Update(ctx context.Context, article models.Article) error
	GetPublished(ctx context.Context, kind string) ([]models.Article, error)
	GetByID(ctx context.Context, id int) (models.Article, error)
}

type NewsService struct {
	Store NewsStore
}

func (s *NewsService) GetPublished(ctx context.Context, kind string) ([]models.Article, error) {
	return s.Store.GetPublished(ctx, kind)
}

func (s *NewsService) GetByID(ctx context.Context, id int) (models.Article, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *NewsService) Create(ctx context.Context, article models.Article) (models.Article, error) {
	if article.Title == "" {
		return models.Article{}, errors.New("title is required")
	}
	if article.Kind == "" {
		article.Kind = models.ArticleNews
	}
	return s.Store.Create(ctx, article)
}

func (s *NewsService) Update(ctx context.Context, article models.Article) (models.Article, error) {
	if _, err := s.Store.GetByID(ctx, article.ID); err != nil {
		return models.Article{}, err
	}
	if err := s.Store.Update(ctx, article); err != nil {
		return models.Article{}, err
	}
	return s.Store.GetByID(ctx, article.ID)
}
