package model

// ExportRequest 是导出任务在队列上的报文，只在入队和出队之间存在
type ExportRequest struct {
	PlaylistID  string `json:"playlistId"`
	TargetEmail string `json:"targetEmail"`
}

// PlaylistExport 邮件投递用的歌单导出视图
type PlaylistExport struct {
	Playlist PlaylistWithSongs `json:"playlist"`
}
