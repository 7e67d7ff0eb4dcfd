package server

import (
	"fmt"
	"log"
	"net"
	"sync/atomic"

	"github.com/msmith/webworker/internal/request"
	"github.com/msmith/webworker/internal/response"
)

// Server accepts connections and hands each one to a goroutine running the
// handler exactly once; there is no keep-alive and no state shared between
// connections.
type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	handler     Handler
}

func Serve(port int, handler Handler) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	s := &Server{
		listener: listener,
		handler:  handler,
	}
	s.isListening.Store(true)
	go s.listen()

	return s, nil
}

func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	if s.listener != nil {
		return s.listener.Close()
	}

	return nil
}

func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				return
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	log.Printf("Handling connection from %s", conn.RemoteAddr())

	req, err := request.RequestFromReader(conn)
	if err != nil {
		// An unreadable request still gets a response: the empty
		// request line resolves as missing, so the client sees a
		// well-formed 404 rather than a reset.
		log.Printf("Request error: %v", err)
		req = &request.Request{}
	}
	log.Printf("Request line: (%s)", req.RequestLine)

	resp := response.NewWriter(conn)
	s.handler(resp, req)
	log.Printf("Done handling connection from %s", conn.RemoteAddr())
}
