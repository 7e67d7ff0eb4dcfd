package main

import (
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/msmith/webworker/internal/request"
)

// Debug tool: accept connections and dump what the request reader sees,
// without writing any response.
func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("error listening: %v", err)
	}
	defer listener.Close()

	fmt.Println("Listening for TCP traffic on", addr)
	for {
		c, err := listener.Accept()
		if err != nil {
			log.Fatalf("error accepting connection: %v", err)
		}
		log.Println("Connection accepted:", c.RemoteAddr())

		req, err := request.RequestFromReader(c)
		if err != nil {
			log.Printf("error reading request: %v", err)
			c.Close()
			continue
		}

		fmt.Printf("Request line: (%s)\n", req.RequestLine)
		for k, v := range req.Headers {
			fmt.Printf("- %s: %s\n", k, v)
		}
		c.Close()
		fmt.Println("Connection to", c.RemoteAddr(), "closed")
	}
}
