package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsportal-backend/internal/domains/comment/model"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	comment := &model.Comment{}
	err := row.Scan(
		&comment.ID,
		&comment.ArticleID,
		&comment.AuthorID,
		&comment.AuthorName,
		&comment.Content,
		&comment.Status,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *postgresCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (id, article_id, author_id, content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.ArticleID,
		comment.AuthorID,
		comment.Content,
		comment.Status,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `
		SELECT c.id, c.article_id, c.author_id, p.display_name, c.content, c.status,
			c.created_at, c.updated_at
		FROM comments c
		JOIN profiles p ON p.id = c.author_id
		WHERE c.id = $1
	`

	comment, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepository) ListApprovedByArticleSlug(ctx context.Context, slug string) ([]*model.Comment, error) {
	query := `
		SELECT c.id, c.article_id, c.author_id, p.display_name, c.content, c.status,
			c.created_at, c.updated_at
		FROM comments c
		JOIN articles a ON a.id = c.article_id
		JOIN profiles p ON p.id = c.author_id
		WHERE a.slug = $1 AND a.status = 'published' AND c.status = $2
		ORDER BY c.created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, slug, model.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}

func (r *postgresCommentRepository) ListByStatus(ctx context.Context, status string, page, limit int) ([]*model.Comment, int, error) {
	where := ""
	countArgs := []interface{}{}
	if status != "" {
		where = " WHERE c.status = $1"
		countArgs = append(countArgs, status)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM comments c` + where
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `
		SELECT c.id, c.article_id, c.author_id, p.display_name, c.content, c.status,
			c.created_at, c.updated_at
		FROM comments c
		JOIN profiles p ON p.id = c.author_id` + where

	args := countArgs
	if status != "" {
		query += `
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3`
	} else {
		query += `
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, total, nil
}

func (r *postgresCommentRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE comments SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to set comment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}
