package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"newsportal-backend/internal/domains/article/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresArticleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresArticleRepository(pool *pgxpool.Pool) ArticleRepository {
	return &postgresArticleRepository{pool: pool}
}

const articleColumns = `
	id, title, slug, content, excerpt, featured_image_url, tags,
	author_id, category_id, status, is_featured, view_count, published_at,
	created_at, updated_at
`

func scanArticle(row pgx.Row) (*model.Article, error) {
	article := &model.Article{}
	var tags []string

	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Slug,
		&article.Content,
		&article.Excerpt,
		&article.FeaturedImageURL,
		pq.Array(&tags),
		&article.AuthorID,
		&article.CategoryID,
		&article.Status,
		&article.IsFeatured,
		&article.ViewCount,
		&article.PublishedAt,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	article.Tags = tags
	return article, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresArticleRepository) Create(ctx context.Context, article *model.Article) error {
	query := `
		INSERT INTO articles (
			id, title, slug, content, excerpt, featured_image_url, tags,
			author_id, category_id, status, is_featured, view_count, published_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.pool.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Slug,
		article.Content,
		article.Excerpt,
		article.FeaturedImageURL,
		pq.Array(article.Tags),
		article.AuthorID,
		article.CategoryID,
		article.Status,
		article.IsFeatured,
		article.ViewCount,
		article.PublishedAt,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// =====================================================
// READS
// =====================================================

func (r *postgresArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	article, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return article, nil
}

func (r *postgresArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1 AND status = $2`

	article, err := scanArticle(r.pool.QueryRow(ctx, query, slug, model.StatusPublished))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	return article, nil
}

// =====================================================
// UPDATES
// =====================================================

func (r *postgresArticleRepository) Update(ctx context.Context, article *model.Article) error {
	query := `
		UPDATE articles SET
			title = $2, content = $3, excerpt = $4, featured_image_url = $5,
			tags = $6, category_id = $7, status = $8, published_at = $9,
			updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.Excerpt,
		article.FeaturedImageURL,
		pq.Array(article.Tags),
		article.CategoryID,
		article.Status,
		article.PublishedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}

	return nil
}

func (r *postgresArticleRepository) Publish(ctx context.Context, article *model.Article) error {
	query := `
		UPDATE articles
		SET status = $2, published_at = $3, updated_at = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, article.ID, model.StatusPublished, article.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to publish article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}

	return nil
}

func (r *postgresArticleRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	query := `UPDATE articles SET is_featured = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, featured)
	if err != nil {
		return fmt.Errorf("failed to set featured flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}

	return nil
}

func (r *postgresArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}

	return nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresArticleRepository) List(ctx context.Context, status, categorySlug string, page, limit int) ([]*model.Article, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, status)
		argPos++
	}
	if categorySlug != "" {
		where += fmt.Sprintf(" AND a.category_id = (SELECT id FROM categories WHERE slug = $%d)", argPos)
		args = append(args, categorySlug)
		argPos++
	}

	countQuery := `SELECT COUNT(*) FROM articles a` + where

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query := `
		SELECT
			a.id, a.title, a.slug, a.content, a.excerpt, a.featured_image_url, a.tags,
			a.author_id, a.category_id, a.status, a.is_featured, a.view_count, a.published_at,
			a.created_at, a.updated_at
		FROM articles a` + where + fmt.Sprintf(`
		ORDER BY COALESCE(a.published_at, a.created_at) DESC
		LIMIT $%d OFFSET $%d`, argPos, argPos+1)

	args = append(args, limit, (page-1)*limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*model.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, total, nil
}

func (r *postgresArticleRepository) ListFeatured(ctx context.Context, limit int) ([]*model.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE status = $1 AND is_featured = TRUE
		ORDER BY published_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, model.StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured articles: %w", err)
	}
	defer rows.Close()

	var articles []*model.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate featured articles: %w", err)
	}

	return articles, nil
}
