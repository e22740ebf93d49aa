package dashboard

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path"
)

// Renderer receives the composed frames of the figure
type Renderer interface {
	Render(frame image.Image) error
	Close() error
}

// FileRenderer writes every frame as a numbered PNG into a directory
type FileRenderer struct {
	dir    string
	frames int
}

var _ Renderer = &FileRenderer{}

func NewFileRenderer(dir string) (*FileRenderer, error) {
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	return &FileRenderer{dir: dir}, nil
}

func (r *FileRenderer) Render(frame image.Image) error {
	r.frames += 1
	f, err := os.Create(path.Join(r.dir, fmt.Sprintf("frame_%04d.png", r.frames)))
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, frame)
}

func (r *FileRenderer) Close() error {
	return nil
}
