package models

import "time"

// Media kinds accepted for a list item.
const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

// Watch statuses accepted for a list item.
const (
	ListTypeWatching    = "Watching"
	ListTypeCompleted   = "Completed"
	ListTypeOnHold      = "On Hold"
	ListTypeDropped     = "Dropped"
	ListTypePlanToWatch = "Plan to Watch"
)

// ListItem is a single entry in a user's watch list.
//
// ItemID, DateAdded and DateUpdated are assigned by the database and are
// immutable from the API's point of view (DateUpdated is refreshed by a
// trigger on every row update). TmdbID and MediaType form the per-user
// uniqueness key: the same title cannot be listed twice.
type ListItem struct {
	ItemID         int64     `json:"item_id"`
	UserID         int64     `json:"-"`
	TmdbID         int64     `json:"tmdb_id"`
	MediaType      string    `json:"media_type"`
	Title          string    `json:"title"`
	PosterPath     *string   `json:"poster_path"`
	ReleaseDate    *Date     `json:"release_date"`
	UserListType   string    `json:"user_list_type"`
	Rating         *int      `json:"rating"`
	CurrentSeason  *int      `json:"current_season"`
	CurrentEpisode *int      `json:"current_episode"`
	Notes          *string   `json:"notes"`
	DateAdded      time.Time `json:"date_added"`
	DateUpdated    time.Time `json:"date_updated"`
}

// ListItemUpdate carries a partial update for an existing list item.
// Only the fields below may be changed after creation; nil means
// "leave unchanged". Anything else in the request body is ignored.
type ListItemUpdate struct {
	Title          *string `json:"title"`
	PosterPath     *string `json:"poster_path"`
	ReleaseDate    *Date   `json:"release_date"`
	UserListType   *string `json:"user_list_type"`
	Rating         *int    `json:"rating"`
	CurrentSeason  *int    `json:"current_season"`
	CurrentEpisode *int    `json:"current_episode"`
	Notes          *string `json:"notes"`
}

// IsEmpty reports whether the update carries no recognized field at all.
func (u ListItemUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.PosterPath == nil &&
		u.ReleaseDate == nil &&
		u.UserListType == nil &&
		u.Rating == nil &&
		u.CurrentSeason == nil &&
		u.CurrentEpisode == nil &&
		u.Notes == nil
}

// ValidMediaType reports whether t is one of the accepted media kinds.
func ValidMediaType(t string) bool {
	return t == MediaTypeMovie || t == MediaTypeTV
}

// ValidListType reports whether t is one of the accepted watch statuses.
func ValidListType(t string) bool {
	switch t {
	case ListTypeWatching, ListTypeCompleted, ListTypeOnHold, ListTypeDropped, ListTypePlanToWatch:
		return true
	}
	return false
}

// ValidRating reports whether r is inside the accepted 1..10 range.
func ValidRating(r int) bool {
	return r >= 1 && r <= 10
}
