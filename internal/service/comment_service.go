package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

const recentCommentLimit = 5

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	notifier    Notifier
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, notifier Notifier) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		notifier:    notifier,
	}
}

type CreateCommentInput struct {
	Text string `json:"text"`
}

func (s *CommentService) Create(ctx context.Context, authorID, postID uuid.UUID, input CreateCommentInput) (*domain.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Text:      input.Text,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	s.notifier.NotifyNewComment(comment)

	return comment, nil
}

func (s *CommentService) Recent(ctx context.Context) ([]domain.Comment, error) {
	return s.commentRepo.ListRecent(ctx, recentCommentLimit)
}
