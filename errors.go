package crawlclean

import "errors"

// Sentinel errors for library operations.
var (
	ErrCurrentUser     = errors.New("failed to resolve current user")
	ErrProcessList     = errors.New("failed to list processes")
	ErrProcessKill     = errors.New("failed to kill process")
	ErrRemoveFile      = errors.New("failed to remove file")
	ErrCleanDirectory  = errors.New("failed to clean directory")
	ErrNilProcessTable = errors.New("process table cannot be nil")
	ErrEmptyLabel      = errors.New("match label cannot be empty")
	ErrEmptyUsername   = errors.New("username cannot be empty")
)
