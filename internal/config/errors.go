package config

import (
	"errors"
	"fmt"
)

// Config file failures. A *FileError matches one of these with errors.Is.
var (
	ErrConfigRead  = errors.New("failed to read config")
	ErrConfigParse = errors.New("failed to parse config")
	ErrConfigWrite = errors.New("failed to write config")
)

// FileError reports a failure on a specific config file.
type FileError struct {
	Op   error // ErrConfigRead, ErrConfigParse or ErrConfigWrite
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{e.Op, e.Err}
}
