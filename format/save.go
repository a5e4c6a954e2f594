package format

import (
	"fmt"
	"os"
	"path/filepath"
)

// reportFileMode is the permission applied to written report files.
const reportFileMode = 0o644

// Save renders the report in all four formats and writes them under dir
// as base.txt, base.json, base.csv and base.yaml. The directory is
// created if missing. Returns a map from format name ("text", "json",
// "csv", "yaml") to the written path.
//
// Rendering happens before any write, so a renderer failure leaves the
// filesystem untouched.
func Save(rep *Report, dir, base string) (map[string]string, error) {
	if dir == "" || base == "" {
		return nil, fmt.Errorf("%w: dir=%q base=%q", ErrBadTarget, dir, base)
	}
	if err := check(rep); err != nil {
		return nil, err
	}

	text, err := Text(rep)
	if err != nil {
		return nil, err
	}
	jsonOut, err := JSON(rep)
	if err != nil {
		return nil, err
	}
	csvOut, err := CSV(rep)
	if err != nil {
		return nil, err
	}
	yamlOut, err := YAML(rep)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("format: creating report dir: %w", err)
	}

	files := []struct {
		name, ext string
		data      []byte
	}{
		{"text", ".txt", []byte(text)},
		{"json", ".json", jsonOut},
		{"csv", ".csv", csvOut},
		{"yaml", ".yaml", yamlOut},
	}

	paths := make(map[string]string, len(files))
	for _, f := range files {
		p := filepath.Join(dir, base+f.ext)
		if err := os.WriteFile(p, f.data, reportFileMode); err != nil {
			return nil, fmt.Errorf("format: writing %s report: %w", f.name, err)
		}
		paths[f.name] = p
	}
	return paths, nil
}
