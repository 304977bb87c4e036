// ABOUTME: Process-scoped memoization of the dataset load.
// ABOUTME: The file is read once; the result (or error) is kept for the process lifetime.
package dataset

import "sync"

// Source loads a dataset file at most once and hands out the same
// immutable Table on every call. It is never invalidated.
type Source struct {
	path string

	once  sync.Once
	table *Table
	err   error
	loads int
}

// NewSource returns a Source for the CSV file at path. Nothing is read
// until Table is first called.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the file the source reads.
func (s *Source) Path() string {
	return s.path
}

// Table returns the loaded table, reading the file on first use.
// A load failure is remembered and returned on every later call.
func (s *Source) Table() (*Table, error) {
	s.once.Do(func() {
		s.loads++
		s.table, s.err = Load(s.path)
	})
	return s.table, s.err
}
