package model

import "time"

type Follow struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:uix_follower_followed"`
	FollowedID int64     `gorm:"column:followed_id;not null;index;uniqueIndex:uix_follower_followed"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "follows"
}
