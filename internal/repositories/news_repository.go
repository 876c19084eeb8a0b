package repositories

import (
	"context"
	"database/sql"
	"errors"

	"shinaBack/internal/models"
)

type NewsRepository struct {
	DB *sql.DB
}

func (r *NewsRepository) Create(ctx context.Context, article models.Article) (models.Article, error) {
	query := `INSERT INTO articles (kind, title, body, cover_url, published, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	res, err := r.DB.ExecContext(ctx, query,
		article.Kind, article.Title, article.Body, article.CoverURL, article.Published)
	if err != nil {
		return models.Article{}, err
	}
	id, _ := res.LastInsertId()
	article.ID = int(id)
	return article, nil
}

func (r *NewsRepository) Update(ctx context.Context, article models.Article) error {
	query := `UPDATE articles SET kind = ?, title = ?, body = ?, cover_url = ?, published = ?, updated_at = NOW() WHERE id = ?`
	res, err := r.DB.ExecContext(ctx, query,
		article.Kind, article.Title, article.Body, article.CoverURL, article.Published, article.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return models.ErrArticleNotFound
	}
	return nil
}

// GetPublished lists published articles, optionally filtered by kind.
func (r *NewsRepository) GetPublished(ctx context.Context, kind string) ([]models.Article, error) {
	query := `SELECT id, kind, title, body, cover_url, published, created_at, updated_at
	          FROM articles WHERE published = TRUE`
	args := []interface{}{}
	if kind != "" {
		query += ` AND kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Kind, &a.Title, &a.Body, &a.CoverURL,
			&a.Published, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (r *NewsRepository) GetByID(ctx context.Context, id int) (models.Article, error) {
	var a models.Article
	query := `SELECT id, kind, title, body, cover_url, published, created_at, updated_at FROM articles WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Kind, &a.Title, &a.Body, &a.CoverURL, &a.Published, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Article{}, models.ErrArticleNotFound
	}
	return a, err
}
