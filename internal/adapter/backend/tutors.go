package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

func (c *Client) GetTutor(ctx context.Context, token, tutorID string) (*domain.Tutor, error) {
	var tutor domain.Tutor
	err := c.do(ctx, "get_tutor", http.MethodGet, "/tutors/"+url.PathEscape(tutorID), token, nil, &tutor)
	if err != nil {
		var re *ResponseError
		if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
			return nil, domain.ErrTutorNotFound
		}
		return nil, err
	}

	if err := checkTutor(&tutor); err != nil {
		return nil, &SchemaError{Resource: "tutor", Err: err}
	}

	return &tutor, nil
}
