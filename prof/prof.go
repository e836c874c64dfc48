// Package prof is a minimal phase-timing recorder for the analysis tool:
// label a phase, record how long it took, dump the records at the end.
package prof

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Entry is a single recorded phase.
type Entry struct {
	Name    string
	Elapsed time.Duration
}

var (
	mu      sync.Mutex
	entries []Entry
)

// Track records the time elapsed since start under the given name. Use with
// defer: defer prof.Track(time.Now(), "keygen").
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	entries = append(entries, Entry{Name: name, Elapsed: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the recorded entries and clears the recorder.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(entries))
	copy(out, entries)
	entries = nil
	return out
}

// Report writes the recorded entries to w, one per line, and clears the
// recorder.
func Report(w io.Writer) {
	for _, e := range SnapshotAndReset() {
		fmt.Fprintf(w, "%-24s %12s\n", e.Name, e.Elapsed.Round(time.Microsecond))
	}
}
