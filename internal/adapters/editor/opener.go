package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"filesum/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	preferred string
	lookPath  func(string) (string, error)
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an opener. preferred wins over $EDITOR and $VISUAL when set.
func NewOpener(preferred string) *Opener {
	return &Opener{
		preferred: preferred,
		lookPath:  exec.LookPath,
	}
}

// Command returns an exec.Cmd for editing path, wired to the terminal
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR or the editor config key")
	}

	// Editors like "code --wait" carry their own arguments
	fields := strings.Fields(editor)
	args := append(fields[1:], path)

	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func (o *Opener) findEditor() string {
	for _, candidate := range []string{o.preferred, os.Getenv("EDITOR"), os.Getenv("VISUAL")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
