package model

import "time"

// Collaboration 表示歌单的协作授权：被授权用户可以读写歌单成员
type Collaboration struct {
	ID         string    `json:"id" gorm:"primaryKey;size:50"`
	PlaylistID string    `json:"playlistId" gorm:"size:50;not null;index:idx_playlist_user,unique"`
	UserID     string    `json:"userId" gorm:"size:50;not null;index:idx_playlist_user,unique"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName 指定表名
func (Collaboration) TableName() string {
	return "collaborations"
}
