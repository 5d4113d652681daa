package request

import "github.com/Zhi-Yan1103/NZ-Discovery/domain"

type Register struct {
	Username    string `json:"username" binding:"required,min=3,max=45"`
	Password    string `json:"password" binding:"required,min=6"`
	Realname    string `json:"realname"`
	Description string `json:"description"`
	DOB         string `json:"dob"`
	AvatarURL   string `json:"avatar_url"`
}

func (r *Register) ToDomain() domain.User {
	return domain.User{
		Username:    r.Username,
		Realname:    r.Realname,
		Description: r.Description,
		DOB:         r.DOB,
		AvatarURL:   r.AvatarURL,
	}
}

type Login struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfile is a partial update; absent fields stay untouched.
type UpdateProfile struct {
	Username    string `json:"username" binding:"omitempty,min=3,max=45"`
	Password    string `json:"password" binding:"omitempty,min=6"`
	Realname    string `json:"realname"`
	Description string `json:"description"`
	DOB         string `json:"dob"`
	AvatarURL   string `json:"avatar_url"`
}

func (r *UpdateProfile) ToDomain() domain.User {
	return domain.User{
		Username:    r.Username,
		Realname:    r.Realname,
		Description: r.Description,
		DOB:         r.DOB,
		AvatarURL:   r.AvatarURL,
	}
}
