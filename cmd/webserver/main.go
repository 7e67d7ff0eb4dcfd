package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/msmith/webworker/internal/page"
	"github.com/msmith/webworker/internal/server"
)

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	root := flag.String("root", ".", "document root to serve from")
	flag.Parse()

	if _, err := os.Stat(filepath.Join(*root, page.TemplateFile)); err != nil {
		log.Fatalf("Document root %s is missing %s: %v", *root, page.TemplateFile, err)
	}

	srv, err := server.Serve(*port, server.SiteHandler(*root))
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
	defer srv.Close()
	log.Printf("Serving %s on port %d", *root, *port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Server gracefully stopped")
}
