package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vedran77/quill/internal/domain"
)

type PostRepo struct {
	db Querier
}

func NewPostRepo(db Querier) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, title, text, tags, image_url, author_id, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		post.ID, post.Title, post.Text, post.Tags, post.ImageURL,
		post.AuthorID, post.Views, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT p.id, p.title, p.text, p.tags, p.image_url, p.author_id,
			p.views, p.created_at, p.updated_at, u.display_name
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.id = $1`

	var p domain.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Text, &p.Tags, &p.ImageURL, &p.AuthorID,
		&p.Views, &p.CreatedAt, &p.UpdatedAt, &p.AuthorName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.title, p.text, p.tags, p.image_url, p.author_id,
			p.views, p.created_at, p.updated_at, u.display_name
		FROM posts p
		JOIN users u ON p.author_id = u.id
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Text, &p.Tags, &p.ImageURL, &p.AuthorID,
			&p.Views, &p.CreatedAt, &p.UpdatedAt, &p.AuthorName,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET title = $1, text = $2, tags = $3, image_url = $4, updated_at = $5
		WHERE id = $6`

	_, err := r.db.Exec(ctx, query,
		post.Title, post.Text, post.Tags, post.ImageURL, post.UpdatedAt, post.ID,
	)
	return err
}

// Delete removes the post and its comments in one transaction so a failure
// between the two statements cannot leave orphaned comments behind.
func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("deleting post comments: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	return tx.Commit(ctx)
}

// IncrementViews bumps the counter in a single statement; the database keeps
// concurrent bumps atomic.
func (r *PostRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *PostRepo) ListRecentTags(ctx context.Context, postLimit int) ([][]string, error) {
	rows, err := r.db.Query(ctx, `SELECT tags FROM posts ORDER BY created_at DESC LIMIT $1`, postLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tagLists [][]string
	for rows.Next() {
		var tags []string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		tagLists = append(tagLists, tags)
	}

	return tagLists, rows.Err()
}
