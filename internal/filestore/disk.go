package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

type disk struct {
	root *os.Root
}

// NewDisk opens dir as the store root. Every access goes through os.Root, so
// symlinks and names cannot reach outside dir.
func NewDisk(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create files directory: %w", err)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open files directory: %w", err)
	}
	return &disk{root: root}, nil
}

func (d *disk) Read(name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	info, err := d.root.Stat(name)
	if err != nil {
		return nil, d.wrap(name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}

	data, err := d.root.ReadFile(name)
	if err != nil {
		return nil, d.wrap(name, err)
	}
	return data, nil
}

func (d *disk) Write(name string, data []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if err := d.root.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (d *disk) Close() error {
	return d.root.Close()
}

func (d *disk) wrap(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("read %s: %w", name, err)
}
