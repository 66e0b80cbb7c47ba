package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotAuthor    = errors.New("only the author can modify this post")
)

const (
	// tagSourcePosts is how many of the newest posts feed the tag list.
	tagSourcePosts = 5
	// tagCap limits how many tags the list returns.
	tagCap = 5
)

type PostService struct {
	postRepo repository.PostRepository
	notifier Notifier
}

func NewPostService(postRepo repository.PostRepository, notifier Notifier) *PostService {
	return &PostService{
		postRepo: postRepo,
		notifier: notifier,
	}
}

type CreatePostInput struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Tags     []string `json:"tags"`
	ImageURL *string  `json:"image_url"`
}

type UpdatePostInput struct {
	Title    *string   `json:"title"`
	Text     *string   `json:"text"`
	Tags     *[]string `json:"tags"`
	ImageURL *string   `json:"image_url"`
}

func (s *PostService) Create(ctx context.Context, authorID uuid.UUID, input CreatePostInput) (*domain.Post, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	post := &domain.Post{
		ID:        uuid.New(),
		Title:     input.Title,
		Text:      input.Text,
		Tags:      tags,
		ImageURL:  input.ImageURL,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	s.notifier.NotifyNewPost(post)

	return post, nil
}

// GetOne increments the view counter before returning the post, so every
// fetch is observable in the counter.
func (s *PostService) GetOne(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err := s.postRepo.IncrementViews(ctx, postID); err != nil {
		return nil, fmt.Errorf("incrementing views: %w", err)
	}
	post.Views++

	return post, nil
}

func (s *PostService) GetAll(ctx context.Context) ([]domain.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) Update(ctx context.Context, userID, postID uuid.UUID, input UpdatePostInput) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrNotAuthor
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Text != nil {
		post.Text = *input.Text
	}
	if input.Tags != nil {
		post.Tags = *input.Tags
	}
	if input.ImageURL != nil {
		post.ImageURL = input.ImageURL
	}
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ErrNotAuthor
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	s.notifier.NotifyDeletedPost(postID)

	return nil
}

// LastTags flattens the tags of the newest posts, keeping first-seen order,
// dropping duplicates and capping the result.
func (s *PostService) LastTags(ctx context.Context) ([]string, error) {
	tagLists, err := s.postRepo.ListRecentTags(ctx, tagSourcePosts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	tags := []string{}
	for _, list := range tagLists {
		for _, tag := range list {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
			if len(tags) == tagCap {
				return tags, nil
			}
		}
	}

	return tags, nil
}
