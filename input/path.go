package input

import "path/filepath"

// SourcePath returns a best-effort filesystem path describing where the
// handle's bytes came from, for use in diagnostics. Filepath handles
// resolve their stored path; descriptor handles are resolved through the
// kernel where possible (/proc on Linux). File and memory handles report
// nothing: the second return is false when no path is known.
func (in *Input) SourcePath() (string, bool) {
	if in == nil {
		return "", false
	}
	switch in.kind {
	case KindFilepath:
		abs, err := filepath.Abs(in.path)
		if err != nil {
			return in.path, true
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved, true
		}
		return abs, true
	case KindFd:
		if p := fdPath(in.fd); p != "" {
			return p, true
		}
	}
	return "", false
}
