package model

import "time"

// Playlist 表示一个歌单，由唯一的所有者持有
type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlaylistSummary 歌单列表视图，带所有者用户名
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// PlaylistWithSongs 歌单详情视图
type PlaylistWithSongs struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Songs    []SongSummary `json:"songs"`
}

// 歌单成员变更动作
const (
	ActivityActionAdd    = "add"
	ActivityActionDelete = "delete"
)

// PlaylistActivity 歌单成员变更的一条账目记录，只追加不修改
type PlaylistActivity struct {
	ID         string    `json:"id"`
	PlaylistID string    `json:"playlistId"`
	SongID     string    `json:"songId"`
	UserID     string    `json:"userId"`
	Action     string    `json:"action"`
	Time       time.Time `json:"time"`
}

// ActivityRecord 账目展示投影，用户名和歌名来自联表查询
type ActivityRecord struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}
