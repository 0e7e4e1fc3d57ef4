package testutil

import (
	"bytes"
	"strings"
	"sync"
)

// ProgramSets extracts the element declarations and relation bodies of an
// HLVL program as sets. Tabs, surrounding whitespace and `r<k>:` labels are
// ignored, so two programs compare equal when they declare the same things
// regardless of order and numbering.
func ProgramSets(program string) (elements, relations map[string]struct{}) {
	return elementSet(program), relationSet(program)
}

func elementSet(program string) map[string]struct{} {
	set := make(map[string]struct{})
	if before, _, ok := strings.Cut(program, "relations:"); ok {
		program = before
	}
	_, block, ok := strings.Cut(program, "elements:")
	if !ok {
		return set
	}
	for _, line := range strings.Split(strings.ReplaceAll(block, "\t", ""), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			set[line] = struct{}{}
		}
	}
	return set
}

func relationSet(program string) map[string]struct{} {
	set := make(map[string]struct{})
	if before, _, ok := strings.Cut(program, "operations:"); ok {
		program = before
	}
	_, block, ok := strings.Cut(program, "relations:")
	if !ok {
		return set
	}
	for _, line := range strings.Split(strings.ReplaceAll(block, "\t", ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, body, labelled := strings.Cut(line, ":"); labelled {
			line = strings.TrimSpace(body)
		}
		set[line] = struct{}{}
	}
	return set
}

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}
