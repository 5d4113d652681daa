package model

import (
	"time"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
)

type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Username    string    `gorm:"type:varchar(45);not null;uniqueIndex"`
	Password    string    `gorm:"type:varchar(100);not null"`
	Realname    string    `gorm:"type:varchar(45)"`
	Description string    `gorm:"type:text"`
	DOB         string    `gorm:"column:dob;type:varchar(10)"`
	AvatarURL   string    `gorm:"column:avatar_url;type:varchar(255)"`
	Role        string    `gorm:"type:varchar(10);default:user"`
	CreatedAt   time.Time `gorm:"column:create_date;type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:          m.ID,
		Username:    m.Username,
		Password:    m.Password,
		Realname:    m.Realname,
		Description: m.Description,
		DOB:         m.DOB,
		AvatarURL:   m.AvatarURL,
		Role:        m.Role,
		CreatedAt:   m.CreatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:          u.ID,
		Username:    u.Username,
		Password:    u.Password,
		Realname:    u.Realname,
		Description: u.Description,
		DOB:         u.DOB,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
