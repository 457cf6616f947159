package server

import (
	"MeloList/config"
	"MeloList/core/album"
	"MeloList/core/collab"
	"MeloList/core/export"
	"MeloList/core/playlist"
	"MeloList/repository"
)

// APIHandler 处理所有API请求
type APIHandler struct {
	playlistService *playlist.Service
	albumService    *album.Service
	collabService   *collab.Service
	exportProducer  *export.Producer
	songRepo        repository.SongRepository
	userRepo        repository.UserRepository
	cfg             *config.Config
}

// NewAPIHandler 创建新的API处理器
func NewAPIHandler(
	playlistService *playlist.Service,
	albumService *album.Service,
	collabService *collab.Service,
	exportProducer *export.Producer,
	songRepo repository.SongRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		playlistService: playlistService,
		albumService:    albumService,
		collabService:   collabService,
		exportProducer:  exportProducer,
		songRepo:        songRepo,
		userRepo:        userRepo,
		cfg:             cfg,
	}
}
