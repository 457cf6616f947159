package model

import (
	"database/sql"
	"time"
)

// Song 表示一首歌曲
type Song struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Performer string         `json:"performer"`
	Genre     sql.NullString `json:"genre"`
	Duration  sql.NullInt64  `json:"duration"` // 时长（秒）
	AlbumID   sql.NullString `json:"albumId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// SongSummary 歌曲在列表视图中的投影
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}
