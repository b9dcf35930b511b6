package plot

import (
	"errors"
	"fmt"

	"github.com/npillmayer/wellpath/survey"
)

// FetchError wraps an error of the data source a survey is read from.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot read survey data: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Categories of overlay messages.
const (
	CategoryFetch      = "data"
	CategoryValidation = "survey"
	CategoryInternal   = "internal"
)

// Channel is one error display slot. It is either showing a message or
// clear.
type Channel struct {
	Active   bool
	Message  string
	Category string
}

// Set shows a message.
func (c *Channel) Set(message, category string) {
	c.Active, c.Message, c.Category = true, message, category
}

// Clear removes a message, if any.
func (c *Channel) Clear() {
	*c = Channel{}
}

// Overlay holds the two independent error channels of a plot: one for
// data-source problems, one for invalid surveys.
type Overlay struct {
	Fetch      Channel
	Validation Channel
}

// Report updates the overlay with the outcome of a cycle. A nil error
// clears both channels. A fetch error is shown in the fetch channel and
// leaves the validation channel alone, as the survey was never looked at.
// Survey errors clear the fetch channel, since data did arrive.
func (o *Overlay) Report(err error) {
	var ferr *FetchError
	switch {
	case err == nil:
		o.Fetch.Clear()
		o.Validation.Clear()
	case errors.As(err, &ferr):
		o.Fetch.Set(err.Error(), CategoryFetch)
	case isSurveyError(err):
		o.Fetch.Clear()
		o.Validation.Set(err.Error(), CategoryValidation)
	default:
		o.Fetch.Clear()
		o.Validation.Set(err.Error(), CategoryInternal)
	}
}

func isSurveyError(err error) bool {
	var verr *survey.ValidationError
	return errors.As(err, &verr) || errors.Is(err, survey.ErrEmptySurvey)
}
