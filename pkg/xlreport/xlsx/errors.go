package xlsx

import "fmt"

// Save stages, used to distinguish persistence failure causes.
const (
	// StageRender is the translation of the workbook into the output
	// format.
	StageRender = "render"
	// StageMkdir is the creation of missing parent directories.
	StageMkdir = "mkdir"
	// StageWrite is the final write of the artifact.
	StageWrite = "write"
)

// SaveError represents a persistence failure. Stage identifies where
// the save failed so callers can tell a serialization error from an
// unwritable path.
type SaveError struct {
	Path  string
	Stage string
	Err   error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save error at %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// NewSaveError creates a new SaveError.
func NewSaveError(path, stage string, err error) *SaveError {
	return &SaveError{Path: path, Stage: stage, Err: err}
}
