package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// File stores each key as <key>.<revision>.json in a data directory, so the
// snapshot file stays plain JSON and a value never exists without its revision.
// A write renames a temp file to the next revision's name and then removes the
// older files; if that cleanup is interrupted, the highest revision still wins.
type File struct {
	mu  sync.Mutex
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) Name() string { return "file" }

func (f *File) Get(_ context.Context, key string) (Entry, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	files, err := f.filesLocked(key)
	if err != nil {
		return Entry{}, false, err
	}
	if len(files) == 0 {
		return Entry{}, false, nil
	}
	latest := files[len(files)-1]
	value, err := os.ReadFile(filepath.Join(f.dir, latest.name))
	if err != nil {
		return Entry{}, false, fmt.Errorf("read %s: %w", key, err)
	}
	return Entry{Value: value, Revision: latest.rev}, true, nil
}

func (f *File) Put(_ context.Context, key string, value []byte, expected int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	files, err := f.filesLocked(key)
	if err != nil {
		return 0, err
	}
	var current int64
	if len(files) > 0 {
		current = files[len(files)-1].rev
	}
	if current != expected {
		return 0, ErrRevisionMismatch
	}

	next := expected + 1
	if err := f.writeAtomic(f.revisionPath(key, next), value); err != nil {
		return 0, err
	}
	for _, old := range files {
		if err := os.Remove(filepath.Join(f.dir, old.name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("remove %s: %w", old.name, err)
		}
	}
	return next, nil
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	files, err := f.filesLocked(key)
	if err != nil {
		return err
	}
	for _, old := range files {
		if err := os.Remove(filepath.Join(f.dir, old.name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", old.name, err)
		}
	}
	return nil
}

func (f *File) Ping(context.Context) error {
	_, err := os.Stat(f.dir)
	return err
}

func (f *File) Close(context.Context) error { return nil }

type revisionFile struct {
	name string
	rev  int64
}

// filesLocked lists the files holding key, oldest revision first. A bare
// <key>.json was written by hand and counts as revision 1.
func (f *File) filesLocked(key string) ([]revisionFile, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("list data directory: %w", err)
	}

	var files []revisionFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, key+".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		middle := strings.TrimSuffix(strings.TrimPrefix(name, key+"."), "json")
		if middle == "" {
			files = append(files, revisionFile{name: name, rev: 1})
			continue
		}
		rev, err := strconv.ParseInt(strings.TrimSuffix(middle, "."), 10, 64)
		if err != nil || rev < 1 {
			continue
		}
		files = append(files, revisionFile{name: name, rev: rev})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].rev < files[j].rev })
	return files, nil
}

func (f *File) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (f *File) revisionPath(key string, rev int64) string {
	return filepath.Join(f.dir, key+"."+strconv.FormatInt(rev, 10)+".json")
}
