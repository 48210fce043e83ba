package screens

import (
	"context"
	"strings"

	"profix/internal/models"
	"profix/internal/validation"
)

const (
	MsgSelectRating = "Please select a rating"
	MsgReviewFailed = "Failed to submit review"
	MsgReviewThanks = "Thank you for your feedback!"
)

type ReviewSubmitter interface {
	SubmitReview(ctx context.Context, req models.SubmitReviewRequest) (string, error)
}

// Rating is the review form for one completed booking.
type Rating struct {
	status
	backend   ReviewSubmitter
	bookingID models.ID
	userID    models.ID
	done      bool
}

func NewRating(backend ReviewSubmitter, bookingID, userID models.ID) *Rating {
	return &Rating{backend: backend, bookingID: bookingID, userID: userID}
}

// Done reports whether the review was accepted. Reviews cannot be edited.
func (r *Rating) Done() bool { return r.done }

func (r *Rating) Submit(ctx context.Context, form validation.ReviewForm) error {
	if form.Rating == 0 {
		r.message = MsgSelectRating
		return ErrInvalidInput
	}
	form.Comment = strings.TrimSpace(form.Comment)
	if err := validation.Struct(form); err != nil {
		if fe, ok := validation.AsFieldErrors(err); ok && fe.Field("rating") != "" {
			r.message = fe.Field("rating")
		} else {
			r.message = err.Error()
		}
		return ErrInvalidInput
	}

	r.begin()
	defer r.end()
	if _, err := r.backend.SubmitReview(ctx, models.SubmitReviewRequest{
		BookingID: r.bookingID,
		UserID:    r.userID,
		Rating:    form.Rating,
		Comment:   form.Comment,
	}); err != nil {
		r.message = failure(err, MsgReviewFailed)
		return err
	}
	r.done = true
	r.message = MsgReviewThanks
	return nil
}
