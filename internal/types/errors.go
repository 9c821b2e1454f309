package types

import "errors"

// Sentinel errors for operations on the document. Using sentinels instead of
// ad-hoc fmt.Errorf allows callers to match with errors.Is.
var (
	// ErrUnknownTopic is returned when an operation references a topic that
	// does not exist. No mutation is performed.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrTopicExists is returned when adding a topic whose name is taken.
	ErrTopicExists = errors.New("topic already exists")

	// ErrEmptyName is returned when a topic or subject name is blank.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrInvalidRating is returned when a rating is outside the 1-5 range.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrUnknownHomework is returned when a homework ID does not exist.
	ErrUnknownHomework = errors.New("unknown homework ID")
)
