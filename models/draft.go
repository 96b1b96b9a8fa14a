package models

// UserDraft is the transient edit buffer behind the user form. It holds the
// same five fields as [User] without an identifier and lives from the moment
// a new or edit flow starts until the form is submitted or cancelled.
type UserDraft struct {
	Name      string
	Email     string
	Password  string
	Birthday  string
	AvatarURL string
}

// User assembles a full record from the draft with the given identifier.
func (d UserDraft) User(id int64) User {
	return User{
		ID:        id,
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		Birthday:  d.Birthday,
		AvatarURL: d.AvatarURL,
	}
}

// DraftFromUser copies a record's fields into a fresh draft, used when an
// edit flow starts.
func DraftFromUser(u User) UserDraft {
	return UserDraft{
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Birthday:  u.Birthday,
		AvatarURL: u.AvatarURL,
	}
}
