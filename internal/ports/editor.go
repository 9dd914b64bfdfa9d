package ports

import "os/exec"

// EditorOpener opens visited input files in an external editor
type EditorOpener interface {
	// Command returns an exec.Cmd for editing path.
	// The TUI hands it to bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
