package engine

import (
	"cppstyle/internal/cxx"
	"cppstyle/internal/source"
)

// FileExecutionResult represents the outcome of reading and extracting a
// single C++ file.
//
// It is emitted by the scheduler and consumed by the engine during streaming
// check execution. Exactly one of Source / ReadErr / ParseErr describes the
// outcome: Source is set on success, ReadErr when the file could not be
// fetched, ParseErr when extraction failed.
type FileExecutionResult struct {
	FileID   int
	Ref      source.FileRef
	Source   *cxx.SourceFile
	ReadErr  error
	ParseErr error
}
