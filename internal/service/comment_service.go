package service

import (
	"context"

	"bitacora/internal/models"
	"bitacora/internal/repository"
	"bitacora/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates the content and attaches a comment to an existing
// post. A missing parent post is a not-found error, never a dangling row.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	var v validation.Violations
	v.Check("content", validation.ValidateContent(in.Content))
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the comments under a post, newest first. An unknown
// post id yields an empty list rather than an error.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// UpdateComment rewrites a comment's content. The owner check is part of the
// store mutation's filter, so a foreign comment and a missing comment are
// both reported as not found.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	var v validation.Violations
	v.Check("content", validation.ValidateContent(in.Content))
	if err := v.Err(); err != nil {
		return nil, err
	}

	affected, err := s.commentRepo.UpdateOwned(ctx, in.CommentID, in.UserID, in.Content)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, models.NewNotFoundError("Comment", in.CommentID)
	}

	// Reload the row so the response carries the stored timestamps and
	// associations, not a struct rebuilt from the input.
	return s.commentRepo.GetByID(ctx, in.CommentID)
}

// DeleteComment removes a comment owned by the caller. Zero affected rows is
// reported as not found.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	affected, err := s.commentRepo.DeleteOwned(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.NewNotFoundError("Comment", commentID)
	}
	return nil
}
