package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Uploads  Uploads
}

type Server struct {
	Port string
	// MaxUploadBytes caps multipart request bodies. Defaults to 1 GiB.
	MaxUploadBytes int64
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	JWTSecret string
}

type Uploads struct {
	VideoDir    string
	MaterialDir string
	PhotoDir    string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(1<<30))
	viper.SetDefault("UPLOAD_VIDEO_DIR", "uploads/videos")
	viper.SetDefault("UPLOAD_MATERIAL_DIR", "uploads/materials")
	viper.SetDefault("UPLOAD_PHOTO_DIR", "uploads/photos")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Uploads.VideoDir = viper.GetString("UPLOAD_VIDEO_DIR")
	config.Uploads.MaterialDir = viper.GetString("UPLOAD_MATERIAL_DIR")
	config.Uploads.PhotoDir = viper.GetString("UPLOAD_PHOTO_DIR")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
