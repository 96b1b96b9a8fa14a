package models

// User represents a single record of the managed user collection.
// The same shape is used on the wire (JSON) and in memory; there is no
// separate DTO layer.
type User struct {
	// ID is the numeric identifier of the record. It is assigned by the
	// client on creation (next-in-sequence, see service.NextID) and is
	// immutable afterwards.
	ID int64 `json:"id"`

	// Name is the display name of the user, at least two characters.
	Name string `json:"name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// Password is stored and rendered as plain text.
	Password string `json:"password"`

	// Birthday is a textual date, e.g. "1990-01-31".
	Birthday string `json:"birthday"`

	// AvatarURL points to the picked avatar image. May be empty.
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
