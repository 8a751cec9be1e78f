package app

import (
	"time"

	"github.com/recipebox/recipebox-backend/internal/pkg/env"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

type Config struct {
	ListenAddr     string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	MediaDir       string
}

func LoadConfig(log *logger.Logger) Config {
	listenAddr := env.Get("LISTEN_ADDR", ":8080", log)
	jwtSecretKey := env.Get("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := env.GetAsInt("ACCESS_TOKEN_TTL", 3600, log)
	mediaDir := env.Get("MEDIA_DIR", "media", log)
	return Config{
		ListenAddr:     listenAddr,
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		MediaDir:       mediaDir,
	}
}
