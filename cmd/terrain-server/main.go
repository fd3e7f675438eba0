package main

import (
	"log"

	"github.com/danielw-oss/terrain/server"
)

const listenAddr = ":8080"

func main() {
	cfg := server.Config{}
	s := server.New(cfg)

	log.Printf("terrain query service listening on http://localhost%s", listenAddr)
	if err := s.Run(listenAddr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
