// Package journal records the events folded through the frogger reducer so
// a run can be saved, reloaded and replayed to the same final state.
package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-frogger/internal/frogger"
)

// ErrUnknownEvent is returned for entries or events the journal cannot map.
var ErrUnknownEvent = errors.New("journal: unknown event")

// Entry kinds as written to disk.
const (
	KindTick     = "tick"
	KindMove     = "move"
	KindSpawn    = "spawn"
	KindGoal     = "goal"
	KindRestart  = "restart"
	fileVersion  = 1
	filePerm     = 0o644
	dirPerm      = 0o755
	kindPlatform = "platform"
	kindHazard   = "hazard"
)

// Journal is an ordered log of the events of one run.
type Journal struct {
	Version   int       `yaml:"version"`
	RunID     string    `yaml:"run_id"`
	StartedAt time.Time `yaml:"started_at"`
	Entries   []Entry   `yaml:"entries"`
}

// Entry is one recorded event. Only the fields of its kind are set.
type Entry struct {
	Seq     int         `yaml:"seq"`
	Kind    string      `yaml:"kind"`
	Elapsed int         `yaml:"elapsed,omitempty"`
	DX      float64     `yaml:"dx,omitempty"`
	DY      float64     `yaml:"dy,omitempty"`
	Spawn   *SpawnEntry `yaml:"spawn,omitempty"`
	Goal    *int        `yaml:"goal,omitempty"`
}

// SpawnEntry is the on-disk form of a spawn request.
type SpawnEntry struct {
	Kind      string  `yaml:"kind"`
	Row       int     `yaml:"row"`
	Height    float64 `yaml:"height"`
	Width     float64 `yaml:"width"`
	Direction string  `yaml:"direction"`
	Speed     float64 `yaml:"speed"`
}

// New creates an empty journal with a fresh run ID.
func New() *Journal {
	return &Journal{
		Version:   fileVersion,
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int {
	return len(j.Entries)
}

// Record appends e to the journal.
func (j *Journal) Record(e frogger.Event) error {
	entry, err := encode(e)
	if err != nil {
		return err
	}
	entry.Seq = len(j.Entries) + 1
	j.Entries = append(j.Entries, entry)
	return nil
}

func encode(e frogger.Event) (Entry, error) {
	switch ev := e.(type) {
	case frogger.Tick:
		return Entry{Kind: KindTick, Elapsed: ev.Elapsed}, nil
	case frogger.Move:
		return Entry{Kind: KindMove, DX: ev.Delta.DX, DY: ev.Delta.DY}, nil
	case frogger.Spawn:
		r := ev.Request
		kind := kindHazard
		if r.Kind == frogger.KindPlatform {
			kind = kindPlatform
		}
		return Entry{Kind: KindSpawn, Spawn: &SpawnEntry{
			Kind:      kind,
			Row:       r.Row,
			Height:    r.Size.Height,
			Width:     r.Size.Width,
			Direction: r.Direction.String(),
			Speed:     r.Speed,
		}}, nil
	case frogger.RegisterGoal:
		idx := ev.Index
		return Entry{Kind: KindGoal, Goal: &idx}, nil
	case frogger.Restart:
		return Entry{Kind: KindRestart}, nil
	default:
		return Entry{}, fmt.Errorf("%w: %T", ErrUnknownEvent, e)
	}
}

// Event decodes the entry back into a simulation event.
func (en Entry) Event() (frogger.Event, error) {
	switch en.Kind {
	case KindTick:
		return frogger.Tick{Elapsed: en.Elapsed}, nil
	case KindMove:
		return frogger.Move{Delta: frogger.Motion{DX: en.DX, DY: en.DY}}, nil
	case KindSpawn:
		if en.Spawn == nil {
			return nil, fmt.Errorf("%w: spawn entry %d has no request", ErrUnknownEvent, en.Seq)
		}
		return en.Spawn.event()
	case KindGoal:
		if en.Goal == nil {
			return nil, fmt.Errorf("%w: goal entry %d has no index", ErrUnknownEvent, en.Seq)
		}
		return frogger.RegisterGoal{Index: *en.Goal}, nil
	case KindRestart:
		return frogger.Restart{}, nil
	default:
		return nil, fmt.Errorf("%w: kind %q at entry %d", ErrUnknownEvent, en.Kind, en.Seq)
	}
}

func (s SpawnEntry) event() (frogger.Event, error) {
	req := frogger.SpawnRequest{
		Kind:  frogger.KindHazard,
		Row:   s.Row,
		Size:  frogger.Size{Height: s.Height, Width: s.Width},
		Speed: s.Speed,
	}
	switch s.Kind {
	case kindPlatform:
		req.Kind = frogger.KindPlatform
	case kindHazard:
	default:
		return nil, fmt.Errorf("%w: spawn kind %q", ErrUnknownEvent, s.Kind)
	}
	switch s.Direction {
	case frogger.DirLeftToRight.String():
		req.Direction = frogger.DirLeftToRight
	case frogger.DirRightToLeft.String():
		req.Direction = frogger.DirRightToLeft
	default:
		return nil, fmt.Errorf("%w: spawn direction %q", ErrUnknownEvent, s.Direction)
	}
	return frogger.Spawn{Request: req}, nil
}

// Events decodes every entry in order.
func (j *Journal) Events() ([]frogger.Event, error) {
	events := make([]frogger.Event, 0, len(j.Entries))
	for _, en := range j.Entries {
		e, err := en.Event()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// Replay folds the recorded events from the initial state.
func Replay(j *Journal) (frogger.State, error) {
	events, err := j.Events()
	if err != nil {
		return frogger.State{}, err
	}
	return frogger.Fold(frogger.Initial(), events...), nil
}

// Save writes the journal as YAML, creating parent directories as needed.
func (j *Journal) Save(path string) error {
	data, err := yaml.Marshal(j)
	if err != nil {
		return fmt.Errorf("journal: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("journal: create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("journal: write %s: %w", path, err)
	}
	return nil
}

// Load reads a journal written by Save.
func Load(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("journal: read %s: %w", path, err)
	}
	var j Journal
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("journal: parse %s: %w", path, err)
	}
	if j.Version != fileVersion {
		return nil, fmt.Errorf("journal: %s: unsupported version %d", path, j.Version)
	}
	return &j, nil
}
