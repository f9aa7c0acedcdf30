package service

import "errors"

var (
	ErrUsernameRequired = errors.New("username is required and must be a non-empty string")

	ErrMissingRequiredFields = errors.New("tmdb_id, media_type, title, and user_list_type are required")
	ErrInvalidMediaType      = errors.New("media_type must be either 'movie' or 'tv'")
	ErrInvalidListType       = errors.New("unknown user_list_type")
	ErrInvalidRating         = errors.New("rating must be between 1 and 10")
)
