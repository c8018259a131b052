package models

// User represents a user account managed by the API.
// It is the only entity the service persists and serves.
type User struct {
	// ID is the unique identifier of the user.
	// It is assigned by the database and never accepted from clients.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique contact address of the user.
	// Stored in normalized (lowercase) form; uniqueness is case-insensitive.
	Email string `json:"email"`

	// Age is the age of the user in years.
	Age int `json:"age"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a stored user.
// Only non-nil fields are written (partial update support);
// a nil field keeps the stored value.
//
// Values are expected to be normalized by the service layer before
// reaching the persistence layer.
type UserUpdate struct {
	// Name replaces the stored display name when non-nil.
	Name *string

	// Email replaces the stored contact address when non-nil.
	Email *string

	// Age replaces the stored age when non-nil.
	Age *int
}
