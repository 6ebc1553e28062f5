// Package workspace locates and loads runx workspace files.
package workspace

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/runx/internal/core/ports"
)

// Loader implements ports.WorkspaceLoader.
//
// The decoder is picked from the extension of the located file. Files with an extension
// that has no registered decoder are read with Fallback.
type Loader struct {
	FS         FileSystem
	Candidates []string
	Decoders   map[string]Decoder
	Fallback   Decoder
}

// NewLoader creates a Loader reading from the OS filesystem with the default candidates.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		FS:         NewOSFS(),
		Candidates: domain.WorkspaceFileNames,
		Decoders: map[string]Decoder{
			".lua": &LuaDecoder{Logger: logger},
			".hcl": HCLDecoder{},
		},
		Fallback: YAMLDecoder{},
	}
}

// Locate returns the path of the workspace file in dir.
func (l *Loader) Locate(dir string) (string, error) {
	locator := Locator{FS: l.FS, Candidates: l.Candidates}
	path, err := locator.Find(dir)
	if err != nil {
		return "", normalize("", l.Candidates, err)
	}
	return path, nil
}

// Load locates the workspace file in dir and decodes it.
// Every failure is returned as a *domain.LoadError.
func (l *Loader) Load(ctx context.Context, dir string) (domain.Workspace, error) {
	path, err := l.Locate(dir)
	if err != nil {
		return nil, err
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, normalize(path, l.Candidates, err)
	}

	ws, err := l.decoderFor(path).Decode(ctx, path, data)
	if err != nil {
		return nil, normalize(path, l.Candidates, err)
	}
	return ws, nil
}

func (l *Loader) decoderFor(path string) Decoder {
	if dec, ok := l.Decoders[strings.ToLower(filepath.Ext(path))]; ok {
		return dec
	}
	if l.Fallback != nil {
		return l.Fallback
	}
	return YAMLDecoder{}
}
