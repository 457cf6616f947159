package db

import (
	"database/sql"
	"fmt"
	"log"

	"MeloList/config"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var DB *sql.DB

// ConnectDB establishes a connection to the database.
func ConnectDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to the database.")
	return nil
}

// InitDB initializes the database schema, creating tables if they don't exist.
func InitDB() error {
	for _, create := range []func() error{
		createUsersTable,
		createAlbumsTable,
		createSongsTable,
		createPlaylistsTable,
		createPlaylistSongsTable,
		createPlaylistActivitiesTable,
		createAlbumLikesTable,
	} {
		if err := create(); err != nil {
			return err
		}
	}

	log.Println("Database initialization completed.")
	return nil
}

func createUsersTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(50) PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

func createAlbumsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS albums (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		year INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create albums table: %w", err)
	}
	return nil
}

func createSongsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS songs (
		id VARCHAR(50) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		performer VARCHAR(255) NOT NULL,
		genre VARCHAR(100),
		duration INT,
		album_id VARCHAR(50),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_song_album FOREIGN KEY (album_id) REFERENCES albums(id) ON DELETE SET NULL
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create songs table: %w", err)
	}
	return nil
}

func createPlaylistsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS playlists (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		owner VARCHAR(50) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_playlist_owner FOREIGN KEY (owner) REFERENCES users(id) ON DELETE CASCADE
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create playlists table: %w", err)
	}
	return nil
}

func createPlaylistSongsTable() error {
	// 注意：(playlist_id, song_id) 不设唯一约束，
	// 同一首歌可以被重复添加，与现有数据保持一致。
	query := `
	CREATE TABLE IF NOT EXISTS playlist_songs (
		id VARCHAR(50) PRIMARY KEY,
		playlist_id VARCHAR(50) NOT NULL,
		song_id VARCHAR(50) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_ps_playlist FOREIGN KEY (playlist_id) REFERENCES playlists(id) ON DELETE CASCADE,
		CONSTRAINT fk_ps_song FOREIGN KEY (song_id) REFERENCES songs(id) ON DELETE CASCADE
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create playlist_songs table: %w", err)
	}
	return nil
}

func createPlaylistActivitiesTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS playlist_song_activities (
		id VARCHAR(50) PRIMARY KEY,
		playlist_id VARCHAR(50) NOT NULL,
		song_id VARCHAR(50) NOT NULL,
		user_id VARCHAR(50) NOT NULL,
		action VARCHAR(10) NOT NULL,
		time TIMESTAMP NOT NULL,
		CONSTRAINT fk_psa_playlist FOREIGN KEY (playlist_id) REFERENCES playlists(id) ON DELETE CASCADE
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create playlist_song_activities table: %w", err)
	}
	return nil
}

func createAlbumLikesTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS user_album_likes (
		id VARCHAR(50) PRIMARY KEY,
		user_id VARCHAR(50) NOT NULL,
		album_id VARCHAR(50) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT uq_user_album UNIQUE (user_id, album_id),
		CONSTRAINT fk_like_album FOREIGN KEY (album_id) REFERENCES albums(id) ON DELETE CASCADE
	);
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create user_album_likes table: %w", err)
	}
	return nil
}
