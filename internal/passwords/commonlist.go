package passwords

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// CommonList is an in-memory set of passwords considered too common to accept.
// It is loaded once at startup from a newline-delimited file and never
// invalidated; the file is static configuration.
type CommonList struct {
	entries map[string]struct{}
}

// LoadCommonList reads the common-password file at path. A missing or
// unreadable file is an error so that a broken deployment fails at startup
// instead of silently disabling the check.
func LoadCommonList(path string) (*CommonList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open common-password list: %w", err)
	}
	defer f.Close()

	list, err := ReadCommonList(f)
	if err != nil {
		return nil, fmt.Errorf("read common-password list %s: %w", path, err)
	}
	return list, nil
}

// ReadCommonList parses a newline-delimited password list.
func ReadCommonList(r io.Reader) (*CommonList, error) {
	entries := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		entries[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &CommonList{entries: entries}, nil
}

// Contains reports whether password appears verbatim in the list. A nil list
// (check disabled by configuration) never matches.
func (l *CommonList) Contains(password string) bool {
	if l == nil {
		return false
	}
	_, ok := l.entries[password]
	return ok
}

// Len returns the number of loaded entries.
func (l *CommonList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}
