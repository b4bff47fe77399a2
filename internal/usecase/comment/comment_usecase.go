package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/harunmuya/gs-app/internal/domain"
)

// CommentSource is the WordPress side of the proxy.
type CommentSource interface {
	ListComments(ctx context.Context, postID int) ([]*domain.Comment, error)
	CreateComment(ctx context.Context, input *domain.CommentInput) (*domain.CommentResult, error)
}

type CommentUseCase struct {
	source   CommentSource
	validate *validator.Validate
}

func NewCommentUseCase(source CommentSource) *CommentUseCase {
	return &CommentUseCase{
		source:   source,
		validate: validator.New(),
	}
}

// List returns approved comments for a post. An unreachable source yields
// an empty list so profile pages still render.
func (uc *CommentUseCase) List(ctx context.Context, postID int) ([]*domain.Comment, error) {
	if postID <= 0 {
		return nil, fmt.Errorf("%w: post id must be positive", domain.ErrInvalidInput)
	}

	comments, err := uc.source.ListComments(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			logrus.WithError(err).WithField("post_id", postID).Warn("Comments unavailable")
			return []*domain.Comment{}, nil
		}
		return nil, err
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

// Submit validates and forwards a comment for moderation.
func (uc *CommentUseCase) Submit(ctx context.Context, input *domain.CommentInput) (*domain.CommentResult, error) {
	input.AuthorName = strings.TrimSpace(input.AuthorName)
	input.AuthorEmail = strings.TrimSpace(input.AuthorEmail)
	input.Content = strings.TrimSpace(input.Content)

	if err := uc.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(err))
	}

	result, err := uc.source.CreateComment(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to submit comment: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"post_id": input.PostID,
		"status":  result.Status,
	}).Info("Comment submitted")
	return result, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
