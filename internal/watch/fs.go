package watch

import "os"

// FileSystem is the subset of file system operations the watcher polls with
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
}

// OSFileSystem implements FileSystem using os package
type OSFileSystem struct{}

// Stat calls os.Stat
func (OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}
