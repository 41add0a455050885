// internal/journal/journal.go
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"go-core-defense/internal/event"
)

// Journal пишет события симуляции построчно в JSON, сжатый zstd.
// Файл меняется раз в час: <dir>/<prefix>-YYYY-MM-DD-HH.jsonl.zst.
type Journal struct {
	dir    string
	prefix string
	now    func() time.Time

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
	failed  bool

	log *slog.Logger
}

func New(dir, prefix string) *Journal {
	return &Journal{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
		log:    slog.With("component", "journal"),
	}
}

type entry struct {
	Time time.Time `json:"time"`
	event.Event
}

// OnEvent implements event.Listener. Write errors are logged once and the
// journal stops writing; the simulation keeps running.
func (j *Journal) OnEvent(e event.Event) {
	if err := j.Write(e); err != nil {
		j.mu.Lock()
		first := !j.failed
		j.failed = true
		j.mu.Unlock()
		if first {
			j.log.Error("Journal write failed", "error", err)
		}
	}
}

func (j *Journal) Write(e event.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.failed {
		return nil
	}

	now := j.now().UTC()
	hour := now.Format("2006-01-02-15")
	if hour != j.curHour {
		if err := j.rotateLocked(hour); err != nil {
			return err
		}
	}

	b, err := json.Marshal(entry{Time: now, Event: e})
	if err != nil {
		return err
	}
	if _, err := j.w.Write(b); err != nil {
		return err
	}
	return j.w.WriteByte('\n')
}

// Flush pushes buffered lines through the encoder.
func (j *Journal) Flush() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.w == nil {
		return nil
	}
	if err := j.w.Flush(); err != nil {
		return err
	}
	return j.enc.Flush()
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.closeLocked()
}

func (j *Journal) rotateLocked(hour string) error {
	if err := j.closeLocked(); err != nil {
		return err
	}
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return err
	}
	path := j.pathForHour(hour)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	j.f = f
	j.enc = enc
	j.w = bufio.NewWriterSize(enc, 64*1024)
	j.curHour = hour
	j.log.Debug("Journal file opened", "path", path)
	return nil
}

func (j *Journal) closeLocked() error {
	var err error
	if j.w != nil {
		err = j.w.Flush()
	}
	if j.enc != nil {
		if cerr := j.enc.Close(); err == nil {
			err = cerr
		}
		j.enc = nil
	}
	if j.f != nil {
		if cerr := j.f.Close(); err == nil {
			err = cerr
		}
		j.f = nil
	}
	j.w = nil
	j.curHour = ""
	return err
}

func (j *Journal) pathForHour(hour string) string {
	return filepath.Join(j.dir, fmt.Sprintf("%s-%s.jsonl.zst", j.prefix, hour))
}
