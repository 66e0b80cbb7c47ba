package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	// Delete removes the post and its comments in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	// ListRecentTags returns the tag list of each of the newest postLimit
	// posts, newest first.
	ListRecentTags(ctx context.Context, postLimit int) ([][]string, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Comment, error)
}
