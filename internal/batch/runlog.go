package batch

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// logDirName is where run logs accumulate under the output base directory.
const logDirName = "로그"

// RunLog appends timestamped lines to {base}/로그/batch_{timestamp}.log and
// mirrors them to stdout, so a run is followable live and auditable later.
type RunLog struct {
	logger *log.Logger
	file   *os.File
}

// OpenRunLog creates the log directory and the per-run log file.
func OpenRunLog(base, timestamp string) (*RunLog, error) {
	dir := filepath.Join(base, logDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("batch_%s.log", timestamp))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log %s: %w", path, err)
	}
	return &RunLog{
		logger: log.New(io.MultiWriter(file, os.Stdout), "", log.LstdFlags),
		file:   file,
	}, nil
}

// Infof logs an informational line.
func (r *RunLog) Infof(format string, args ...any) {
	if r != nil {
		r.logger.Printf("INFO - "+format, args...)
	}
}

// Warnf logs a warning line.
func (r *RunLog) Warnf(format string, args ...any) {
	if r != nil {
		r.logger.Printf("WARNING - "+format, args...)
	}
}

// Errorf logs an error line.
func (r *RunLog) Errorf(format string, args ...any) {
	if r != nil {
		r.logger.Printf("ERROR - "+format, args...)
	}
}

// Close closes the underlying log file.
func (r *RunLog) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
