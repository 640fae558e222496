package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar holds the log file path. Unset or empty disables logging.
const EnvVar = "FLIP_DEBUG"

// sink is the process-wide log destination. It opens lazily from EnvVar on
// first use unless Init has already chosen a path.
var sink struct {
	sync.Mutex
	f       *os.File
	decided bool
}

// Init sends log output to path, replacing any open file. An empty path
// turns logging off.
func Init(path string) error {
	sink.Lock()
	defer sink.Unlock()
	sink.decided = true
	return open(path)
}

func open(path string) error {
	if sink.f != nil {
		sink.f.Close()
		sink.f = nil
	}
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("debug: create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("debug: open log: %w", err)
	}
	sink.f = f
	return nil
}

// decide must be called with the sink locked.
func decide() {
	if sink.decided {
		return
	}
	sink.decided = true
	// Nowhere to report a bad path; logging just stays off.
	_ = open(os.Getenv(EnvVar))
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	sink.Lock()
	defer sink.Unlock()
	decide()
	return sink.f != nil
}

// Close flushes and closes the log file. Later calls to Log are dropped.
func Close() error {
	sink.Lock()
	defer sink.Unlock()
	sink.decided = true
	if sink.f == nil {
		return nil
	}
	err := sink.f.Close()
	sink.f = nil
	return err
}

// Log appends one timestamped line.
func Log(format string, args ...any) {
	sink.Lock()
	defer sink.Unlock()
	decide()
	if sink.f == nil {
		return
	}
	fmt.Fprintf(sink.f, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
	sink.f.Sync()
}
