// SPDX-License-Identifier: MIT
// Package format: sentinel errors and the Report/Entry data model.

package format

import "errors"

// Sentinel errors for report construction and rendering.
var (
	// ErrNilSet is returned when a Report constructor receives nil.
	ErrNilSet = errors.New("format: nil result set")

	// ErrNoEntries is returned when a renderer or Save receives a Report
	// with an empty entry list.
	ErrNoEntries = errors.New("format: report has no entries")

	// ErrBadTarget is returned by Save for an empty directory or base name.
	ErrBadTarget = errors.New("format: invalid save target")

	// ErrBadGroupSize is returned by Group for a block size < 1.
	ErrBadGroupSize = errors.New("format: group size must be at least 1")
)

// Report kinds.
const (
	KindBruteForce    = "bruteforce"
	KindOrchestration = "orchestration"
)

// Entry is one trial of a run, flattened for serialization.
type Entry struct {
	Index    int    `json:"index" yaml:"index"`
	Alphabet string `json:"alphabet" yaml:"alphabet"`
	Key      string `json:"key" yaml:"key"`
	Mode     string `json:"mode" yaml:"mode"`
	Success  bool   `json:"success" yaml:"success"`
	Output   string `json:"output,omitempty" yaml:"output,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the renderable summary of one run. It is plain data: building
// it never touches the filesystem, and every renderer consumes it
// read-only.
type Report struct {
	// Kind names the producing run type: KindBruteForce or
	// KindOrchestration.
	Kind string `json:"kind" yaml:"kind"`

	// Ciphertext and Mode echo the run parameters.
	Ciphertext string `json:"ciphertext" yaml:"ciphertext"`
	Mode       string `json:"mode" yaml:"mode"`

	// Total, Succeeded and Incomplete summarize the run outcome.
	Total      int  `json:"total" yaml:"total"`
	Succeeded  int  `json:"succeeded" yaml:"succeeded"`
	Incomplete bool `json:"incomplete" yaml:"incomplete"`

	// Entries holds one record per trial, in the run's enumeration order.
	Entries []Entry `json:"entries" yaml:"entries"`
}
