package response

type StatusCode int

const (
	StatusOK       StatusCode = 200
	StatusNotFound StatusCode = 404
)

func (s StatusCode) statusLine() string {
	switch s {
	case StatusOK:
		return "HTTP/1.1 200 OK\r\n"
	case StatusNotFound:
		return "HTTP/1.1 404 Not Found\r\n"
	default:
		return ""
	}
}
