package web

import (
	"brackets-bot/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that exposes read-only cohort data
type Server struct {
	api *api.API
}
