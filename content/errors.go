package content

import "errors"

var (
	ErrSlugRequired  = errors.New("content: slug is required")
	ErrSlugInvalid   = errors.New("content: slug contains invalid characters")
	ErrNamesRequired = errors.New("content: display names are required")
	ErrDateInvalid   = errors.New("content: wedding date is invalid")
)
