package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Follower reads lines appended to a file since its last poll.
type Follower struct {
	path    string
	offset  int64
	partial string
}

// NewFollower returns a Follower that starts reading path at offset.
func NewFollower(path string, offset int64) *Follower {
	return &Follower{path: path, offset: max(offset, 0)}
}

// Open returns the last maxLines non-blank lines of the file at path and a
// Follower positioned right after them. A missing file yields no lines and a
// Follower at the start of the file.
func Open(path string, maxLines int) ([]string, *Follower, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewFollower(path, 0), nil
		}
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("stat log: %w", err)
	}

	// Bytes written after the stat belong to the follower.
	lines, err := Tail(io.LimitReader(file, info.Size()), maxLines)
	if err != nil {
		return nil, nil, fmt.Errorf("read log: %w", err)
	}
	return lines, NewFollower(path, info.Size()), nil
}

// Offset returns the byte offset the next Poll reads from.
func (f *Follower) Offset() int64 {
	return f.offset
}

// Poll calls emit for every complete non-blank line appended since the last
// poll. A trailing line without a newline is held until it is completed. A
// file shorter than the current offset is treated as rotated and read from
// the start. A missing file is not an error.
func (f *Follower) Poll(emit func(line string)) error {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.Size() < f.offset {
		f.offset = 0
		f.partial = ""
	}
	if info.Size() == f.offset {
		return nil
	}
	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek log: %w", err)
	}

	r := bufio.NewReader(io.LimitReader(file, info.Size()-f.offset))
	for {
		chunk, err := r.ReadString('\n')
		f.offset += int64(len(chunk))
		if err != nil {
			f.partial += chunk
			if len(f.partial) > maxLineBytes {
				f.partial = ""
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read log: %w", err)
		}

		line := strings.TrimRight(f.partial+chunk, "\r\n")
		f.partial = ""
		if strings.TrimSpace(line) != "" {
			emit(line)
		}
	}
}
