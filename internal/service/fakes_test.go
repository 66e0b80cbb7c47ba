package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

// In-memory repositories. They copy on read so, like the real store, changes
// only stick after an explicit write.

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakePostRepo struct {
	posts   map[uuid.UUID]*domain.Post
	tagRows [][]string
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*domain.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	for _, p := range r.posts {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (r *fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	if p, ok := r.posts[id]; ok {
		p.Views++
	}
	return nil
}

func (r *fakePostRepo) ListRecentTags(_ context.Context, _ int) ([][]string, error) {
	return r.tagRows, nil
}

type fakeCommentRepo struct {
	comments []domain.Comment
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	for _, c := range r.comments {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCommentRepo) ListRecent(_ context.Context, limit int) ([]domain.Comment, error) {
	out := make([]domain.Comment, len(r.comments))
	copy(out, r.comments)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// recordingNotifier captures published events.
type recordingNotifier struct {
	newPosts     []uuid.UUID
	deletedPosts []uuid.UUID
	newComments  []uuid.UUID
}

func (n *recordingNotifier) NotifyNewPost(post *domain.Post) {
	n.newPosts = append(n.newPosts, post.ID)
}

func (n *recordingNotifier) NotifyDeletedPost(postID uuid.UUID) {
	n.deletedPosts = append(n.deletedPosts, postID)
}

func (n *recordingNotifier) NotifyNewComment(comment *domain.Comment) {
	n.newComments = append(n.newComments, comment.ID)
}
