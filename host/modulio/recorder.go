package modulio

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"
)

// recorder appends one CSV row per received telemetry sample. The
// column set is frozen at start, which is why device creation and
// removal are rejected while recording.
type recorder struct {
	mu   sync.Mutex
	file *os.File
	w    *csv.Writer
}

// StartRecording begins writing telemetry samples to a CSV file. An
// existing file at the path is overwritten. The header row is
// "Time" followed by the current device names in index order.
func (c *Client) StartRecording(filename string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.recorder != nil {
		return fmt.Errorf("already recording")
	}
	if len(c.devices) == 0 {
		return fmt.Errorf("no devices to record")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create recording file: %w", err)
	}

	w := csv.NewWriter(file)
	header := make([]string, 0, len(c.devices)+1)
	header = append(header, "Time")
	for _, d := range c.devices {
		header = append(header, d.name)
	}
	if err := w.Write(header); err != nil {
		file.Close()
		return fmt.Errorf("write recording header: %w", err)
	}
	w.Flush()

	c.recorder = &recorder{file: file, w: w}
	return nil
}

// StopRecording flushes and closes the recording file.
func (c *Client) StopRecording() error {
	c.mu.Lock()
	rec := c.recorder
	c.recorder = nil
	c.mu.Unlock()
	if rec == nil {
		return fmt.Errorf("not recording")
	}
	return rec.close()
}

// Recording reports whether a recording is in progress.
func (c *Client) Recording() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recorder != nil
}

func (r *recorder) record(t time.Time, values []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return
	}
	row := make([]string, 0, len(values)+1)
	row = append(row, t.Format("15:04:05.000"))
	row = append(row, values...)
	r.w.Write(row)
	r.w.Flush()
}

func (r *recorder) close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w.Flush()
	r.w = nil
	err := r.file.Close()
	r.file = nil
	return err
}
