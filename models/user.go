package models

// User is the profile resolved from the backend for the current session.
type User struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone,omitempty" form:"phone"`
	Address   string `json:"address,omitempty" form:"address"`
}

// PasswordChange is the change-password payload.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Settings holds the notification preferences on the profile page.
type Settings struct {
	EmailNotifications     bool `json:"emailNotifications"`
	NewsletterSubscription bool `json:"newsletterSubscription"`
}
