package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// csvHeader is the fixed column layout of the CSV renderer.
var csvHeader = []string{"index", "alphabet", "key", "mode", "success", "output", "error"}

// Text renders the report for a terminal: a parameter header, one line
// per entry, and a closing summary. Failed entries show the error in
// place of the output.
func Text(rep *Report) (string, error) {
	if err := check(rep); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s report\n", rep.Kind)
	fmt.Fprintf(&b, "ciphertext: %s\n", rep.Ciphertext)
	fmt.Fprintf(&b, "mode:       %s\n", rep.Mode)
	b.WriteString("\n")

	for i := range rep.Entries {
		e := &rep.Entries[i]
		if e.Success {
			fmt.Fprintf(&b, "%6d  key=%-12s %s\n", e.Index, e.Key, e.Output)
		} else {
			fmt.Fprintf(&b, "%6d  key=%-12s FAILED: %s\n", e.Index, e.Key, e.Error)
		}
	}

	fmt.Fprintf(&b, "\n%d/%d succeeded", rep.Succeeded, rep.Total)
	if rep.Incomplete {
		b.WriteString(" (run incomplete)")
	}
	b.WriteString("\n")
	return b.String(), nil
}

// JSON renders the report as indented JSON.
func JSON(rep *Report) ([]byte, error) {
	if err := check(rep); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("format: encoding json: %w", err)
	}
	return append(out, '\n'), nil
}

// CSV renders one row per entry under a fixed header. Run-level fields
// (ciphertext, incompleteness) are not repeated per row; pair CSV output
// with the JSON or YAML report when the full context matters.
func CSV(rep *Report) ([]byte, error) {
	if err := check(rep); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("format: encoding csv: %w", err)
	}
	for i := range rep.Entries {
		e := &rep.Entries[i]
		row := []string{
			strconv.Itoa(e.Index),
			e.Alphabet,
			e.Key,
			e.Mode,
			strconv.FormatBool(e.Success),
			e.Output,
			e.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("format: encoding csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("format: encoding csv: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML renders the report as a YAML document.
func YAML(rep *Report) ([]byte, error) {
	if err := check(rep); err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("format: encoding yaml: %w", err)
	}
	return out, nil
}

// check guards every renderer against nil and empty reports.
func check(rep *Report) error {
	if rep == nil {
		return ErrNilSet
	}
	if len(rep.Entries) == 0 {
		return ErrNoEntries
	}
	return nil
}
