package scanner

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
)

// Lister reads the immediate entries of a directory. Implementations may
// return the entries read so far together with an error when listing fails
// part way through.
type Lister interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
}

// OSLister lists directories of the host filesystem. Entry types are taken
// from the directory listing and never follow symlinks.
type OSLister struct{}

var (
	// readDirBatch is the number of entries requested per read.
	readDirBatch = 256
	// maxReadDirFailures bounds consecutive failed reads that return no
	// entries before a listing is abandoned.
	maxReadDirFailures = 8
)

// ReadDir implements Lister. An entry whose metadata cannot be read is
// dropped and listing continues with its siblings; the first such error is
// returned alongside the entries.
func (OSLister) ReadDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		entries  []fs.DirEntry
		firstErr error
		failures int
	)
	for failures < maxReadDirFailures {
		batch, err := f.ReadDir(readDirBatch)
		entries = append(entries, batch...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err == nil {
			failures = 0
			continue
		}

		if firstErr == nil {
			firstErr = err
		}
		if len(batch) == 0 {
			failures++
		} else {
			failures = 0
		}
	}
	return entries, firstErr
}

// BillyLister lists directories of a go-billy filesystem, e.g. memfs or a
// chrooted osfs.
type BillyLister struct {
	FS billy.Dir
}

// NewBillyLister returns a Lister backed by fsys.
func NewBillyLister(fsys billy.Dir) BillyLister {
	return BillyLister{FS: fsys}
}

// ReadDir implements Lister.
func (l BillyLister) ReadDir(dir string) ([]fs.DirEntry, error) {
	infos, err := l.FS.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		if info == nil {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}
