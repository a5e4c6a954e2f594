// Package format renders the result aggregates of bruteforce and
// orchestrate runs into human- and machine-readable reports.
//
// The pipeline is two-stage:
//
//  1. Build a Report from a result set (FromBruteForce, FromOrchestration).
//     A Report is plain structured data with serialization tags; it carries
//     the run parameters, aggregate counters, and one Entry per trial.
//  2. Render the Report in one of four formats: Text (terminal-friendly),
//     JSON, CSV (one row per entry), or YAML. Save writes all four next to
//     each other and returns the produced paths.
//
// Group reformats cipher output into fixed-size letter blocks, the
// traditional transmission layout ("RIJVS UYVJN ...").
//
// Renderers are deterministic: the same Report always produces the same
// bytes, so reports diff cleanly across runs.
package format
