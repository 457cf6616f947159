package model

import "time"

// Album 表示一张专辑
type Album struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AlbumWithSongs 包含专辑信息和其收录的歌曲
type AlbumWithSongs struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Year  int           `json:"year"`
	Songs []SongSummary `json:"songs"`
}

// AlbumLike 表示用户对专辑的一次点赞，(UserID, AlbumID) 唯一
type AlbumLike struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	AlbumID   string    `json:"albumId"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikeCount 专辑点赞数，Cache 标记数据来源
type LikeCount struct {
	Likes int  `json:"likes"`
	Cache bool `json:"-"`
}
