package live

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeu5/motor-rl-viz/dashboard"
)

const indexPage = `<!DOCTYPE html>
<html>
<head><title>motor dashboard</title></head>
<body style="margin:0;background:#1e1e1e">
<img id="frame" src="/frame.png" style="max-width:100%">
<script>
setInterval(function() {
	document.getElementById("frame").src = "/frame.png?t=" + Date.now();
}, 1000);
</script>
</body>
</html>
`

// Server serves the latest dashboard frame over HTTP.
// It implements dashboard.Renderer and keeps only the most recent
// composed frame.
type Server struct {
	server *http.Server

	mu          sync.Mutex
	frame       []byte
	frames      int
	plots       []string
	updateCycle int
}

var _ dashboard.Renderer = &Server{}

func NewServer(addr string) *Server {
	s := &Server{}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/", s.handleIndex)
	r.GET("/frame.png", s.handleFrame)
	r.GET("/meta", s.handleMeta)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Start the server, shut down when the context is cancelled
func (s *Server) Start(ctx context.Context) {
	go func() {
		s.server.ListenAndServe()
	}()

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.server.Shutdown(sctx)
	}()
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Describe sets the plot names and the update cycle reported on /meta
func (s *Server) Describe(plots []string, updateCycle int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plots = plots
	s.updateCycle = updateCycle
}

func (s *Server) Render(frame image.Image) error {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, frame); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = buf.Bytes()
	s.frames += 1
	return nil
}

func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

func (s *Server) handleFrame(c *gin.Context) {
	s.mu.Lock()
	frame := s.frame
	s.mu.Unlock()
	if frame == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no frame rendered yet"})
		return
	}
	c.Data(http.StatusOK, "image/png", frame)
}

func (s *Server) handleMeta(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"frames":       s.frames,
		"plots":        s.plots,
		"update_cycle": s.updateCycle,
	})
}
