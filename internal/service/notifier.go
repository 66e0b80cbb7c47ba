package service

import (
	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

// Notifier pushes content events to connected feed clients. Services never
// block on it and never fail because of it.
type Notifier interface {
	NotifyNewPost(post *domain.Post)
	NotifyDeletedPost(postID uuid.UUID)
	NotifyNewComment(comment *domain.Comment)
}

// NopNotifier drops every event. Useful in tests and when the feed is off.
type NopNotifier struct{}

func (NopNotifier) NotifyNewPost(*domain.Post)       {}
func (NopNotifier) NotifyDeletedPost(uuid.UUID)      {}
func (NopNotifier) NotifyNewComment(*domain.Comment) {}
