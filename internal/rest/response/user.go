package response

import "github.com/Zhi-Yan1103/NZ-Discovery/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Realname    string `json:"realname,omitempty"`
	Description string `json:"description,omitempty"`
	DOB         string `json:"dob,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Role        string `json:"role,omitempty"`
}

// NewUserFromDomain: Domain -> Response. Never exposes the credential
// hash.
func NewUserFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:          u.ID,
		Username:    u.Username,
		Realname:    u.Realname,
		Description: u.Description,
		DOB:         u.DOB,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
	}
}

func NewUsersFromDomain(users []domain.User) []User {
	res := make([]User, len(users))
	for i := range users {
		res[i] = *NewUserFromDomain(&users[i])
	}
	return res
}
