// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package glossary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Resource is a binary file referenced by glossary definitions, such as an
// image or an audio clip.
//
// A Resource must not be used concurrently.
type Resource interface {
	Record

	// FileName returns the relative path where the resource is saved.
	FileName() string

	// Data returns the resource's content.
	Data() ([]byte, error)

	// Size returns the size of the resource's content in bytes.
	Size() (int64, error)

	// Save writes the resource to FileName under dir and returns the written
	// path. Missing parent directories are created and existing files are
	// overwritten. After Save the resource is backed by the saved file.
	Save(dir string) (string, error)
}

// NewResource returns a new resource. If inTmp is true the data is spooled to
// a temporary file immediately and a [*SpooledResource] is returned,
// otherwise the data is kept in a [*InMemoryResource].
func NewResource(fileName string, data []byte, inTmp bool) (Resource, error) {
	if inTmp {
		return NewSpooledResource(fileName, data)
	}
	return NewInMemoryResource(fileName, data), nil
}

// InMemoryResource is a resource whose content is held in memory until it is
// saved.
type InMemoryResource struct {
	fileName string
	data     []byte

	// path is set once the resource has been saved. data is released at that
	// point.
	path string
}

// NewInMemoryResource returns a resource holding data in memory. The
// resource takes ownership of data.
func NewInMemoryResource(fileName string, data []byte) *InMemoryResource {
	return &InMemoryResource{
		fileName: fileName,
		data:     data,
	}
}

// FileName implements [Resource.FileName].
func (r *InMemoryResource) FileName() string {
	return r.fileName
}

// Data implements [Resource.Data].
func (r *InMemoryResource) Data() ([]byte, error) {
	if r.path != "" {
		return readResource(r.path)
	}
	return r.data, nil
}

// Size implements [Resource.Size].
func (r *InMemoryResource) Size() (int64, error) {
	if r.path != "" {
		return statResource(r.path)
	}
	return int64(len(r.data)), nil
}

// Save implements [Resource.Save].
func (r *InMemoryResource) Save(dir string) (string, error) {
	dst, err := prepareDest(dir, r.fileName)
	if err != nil {
		return "", err
	}
	if r.path != "" {
		if err := moveFile(r.path, dst); err != nil {
			return "", err
		}
	} else {
		//nolint:gosec // resources are regular data files.
		if err := os.WriteFile(dst, r.data, 0o644); err != nil {
			return "", fmt.Errorf("%w: writing %q: %w", ErrResourceIO, dst, err)
		}
		r.data = nil
	}
	r.path = dst
	return dst, nil
}

// Path returns the path of the saved file or an empty string if the resource
// was not saved yet.
func (r *InMemoryResource) Path() string {
	return r.path
}

// SpooledResource is a resource whose content is stored in a file.
type SpooledResource struct {
	fileName string
	path     string
}

// NewSpooledResource writes data to a new temporary file and returns a
// resource backed by that file. The temporary file is removed when the
// resource is saved; otherwise removing it is up to the caller.
func NewSpooledResource(fileName string, data []byte) (*SpooledResource, error) {
	f, err := os.CreateTemp("", filepath.Base(fileName)+"_*")
	if err != nil {
		return nil, fmt.Errorf("%w: creating temp file: %w", ErrResourceIO, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: writing %q: %w", ErrResourceIO, f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing %q: %w", ErrResourceIO, f.Name(), err)
	}

	return &SpooledResource{
		fileName: fileName,
		path:     f.Name(),
	}, nil
}

// OpenSpooledResource returns a resource backed by the existing file at path.
// The file is not read or copied.
func OpenSpooledResource(fileName, path string) *SpooledResource {
	return &SpooledResource{
		fileName: fileName,
		path:     path,
	}
}

// FileName implements [Resource.FileName].
func (r *SpooledResource) FileName() string {
	return r.fileName
}

// Path returns the path of the backing file.
func (r *SpooledResource) Path() string {
	return r.path
}

// Data implements [Resource.Data].
func (r *SpooledResource) Data() ([]byte, error) {
	return readResource(r.path)
}

// Size implements [Resource.Size].
func (r *SpooledResource) Size() (int64, error) {
	return statResource(r.path)
}

// Save implements [Resource.Save]. The backing file is moved to the
// destination.
func (r *SpooledResource) Save(dir string) (string, error) {
	dst, err := prepareDest(dir, r.fileName)
	if err != nil {
		return "", err
	}
	if err := moveFile(r.path, dst); err != nil {
		return "", err
	}
	r.path = dst
	return dst, nil
}

// prepareDest returns the save path for fileName under dir and creates its
// parent directories.
func prepareDest(dir, fileName string) (string, error) {
	dst := filepath.Join(dir, fileName)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("%w: creating directory: %w", ErrResourceIO, err)
	}
	return dst, nil
}

func readResource(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrResourceIO, path, err)
	}
	return b, nil
}

func statResource(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrResourceIO, err)
	}
	return fi.Size(), nil
}

// moveFile renames src to dst. If the rename fails, for example because src
// and dst are on different filesystems, the file is copied and src removed.
func moveFile(src, dst string) error {
	if src == dst {
		return nil
	}
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(renameErr, &linkErr) {
		return fmt.Errorf("%w: %w", ErrResourceIO, renameErr)
	}

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("%w: moving %q: %w", ErrResourceIO, src, errors.Join(renameErr, err))
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("%w: %w", ErrResourceIO, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
