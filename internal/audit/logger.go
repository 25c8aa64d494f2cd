package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry records one sign or verify operation. Message bytes and key
// material are never recorded.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"`
	Algorithm string    `json:"algorithm,omitempty"`
	Status    string    `json:"status"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Journal is an async operation journal that decouples the signing path
// from log writes. Entries are written as JSON lines.
type Journal struct {
	entries chan Entry
	out     io.Writer

	mu    sync.RWMutex
	store []Entry

	done chan struct{}
}

// NewJournal creates a journal with the given buffer size and output writer.
func NewJournal(bufferSize int, out io.Writer) *Journal {
	j := &Journal{
		entries: make(chan Entry, bufferSize),
		out:     out,
		done:    make(chan struct{}),
	}
	go j.processLoop()
	return j
}

// Record sends an entry to the async pipeline. Non-blocking; the entry is
// dropped with a warning when the buffer is full.
func (j *Journal) Record(operation, algorithm, status, errorKind, detail string) {
	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Operation: operation,
		Algorithm: algorithm,
		Status:    status,
		ErrorKind: errorKind,
		Detail:    detail,
	}

	select {
	case j.entries <- entry:
	default:
		slog.Warn("journal buffer full, dropping entry", "operation", operation)
	}
}

// Query returns stored entries matching the filter criteria, newest first.
func (j *Journal) Query(operation, algorithm string, start, end time.Time, limit int) []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var results []Entry
	for i := len(j.store) - 1; i >= 0; i-- {
		e := j.store[i]
		if operation != "" && e.Operation != operation {
			continue
		}
		if algorithm != "" && e.Algorithm != algorithm {
			continue
		}
		if !start.IsZero() && e.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && e.Timestamp.After(end) {
			continue
		}
		results = append(results, e)
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results
}

// Close stops the processing loop and waits for it to drain.
func (j *Journal) Close() {
	close(j.entries)
	<-j.done
}

func (j *Journal) processLoop() {
	defer close(j.done)

	for entry := range j.entries {
		j.mu.Lock()
		j.store = append(j.store, entry)
		j.mu.Unlock()

		if j.out != nil {
			data, err := json.Marshal(entry)
			if err != nil {
				slog.Error("journal marshal", "error", err)
				continue
			}
			fmt.Fprintf(j.out, "%s\n", data)
		}
	}
}
