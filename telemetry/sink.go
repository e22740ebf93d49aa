package telemetry

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/zeu5/motor-rl-viz/types"
	"github.com/zeu5/motor-rl-viz/util"
)

// Sink consumes the step records of a run
type Sink interface {
	Append(episode int, d types.StepData) error
	Close() error
}

// FileSink writes one JSON line per step into per-episode trace files
type FileSink struct {
	dir  string
	name string
}

var _ Sink = &FileSink{}

func NewFileSink(dir, name string) (*FileSink, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &FileSink{
		dir:  dir,
		name: name,
	}, nil
}

func (s *FileSink) Append(episode int, d types.StepData) error {
	bs, err := json.Marshal(d)
	if err != nil {
		return err
	}
	tracesFile := path.Join(s.dir, fmt.Sprintf("%s_%d.jsonl", s.name, episode))
	return util.AppendToFile(tracesFile, string(bs))
}

func (s *FileSink) Close() error {
	return nil
}
