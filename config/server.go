package config

import "os"

const defaultPort = "3000"
const defaultStaticDir = "./public"

type ServerConfig struct {
	Port      string
	StaticDir string
}

func GetServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = defaultStaticDir
	}

	return &ServerConfig{
		Port:      port,
		StaticDir: staticDir,
	}
}
