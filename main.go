package main

import (
	"github.com/fahim-khandakar/explore-elite-server-side/startup"
	"github.com/fahim-khandakar/explore-elite-server-side/startup/config"
)

func main() {
	cfg := config.NewConfig()
	server := startup.NewServer(cfg)
	server.Start()
}
