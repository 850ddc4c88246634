// Package diag defines the diagnostic model shared by all analysis phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the lexer / parser / semantic passes.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) whose ID() form is the
//     stable string surfaced to external tooling; IDs never change meaning
//     across releases.
//   - Message – human oriented text; lower-case, no trailing period.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g. "first
// declared here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. A phase
// constructs a ReportBuilder via NewReportBuilder (or the helper functions
// ReportError/ReportWarning/ReportInfo) and chains WithNote before calling
// Emit. When no metadata is needed, phases may call Reporter.Report directly.
//
// Diagnostics are append-only for the duration of a run: a Bag never mutates
// or reorders records once added, so re-running analysis over unchanged input
// reproduces the identical sequence. SyncReporter serialises appends from
// concurrent checking tasks onto one underlying reporter.
//
// # Consumers
//
//   - internal/diagfmt: renders Diagnostics into pretty/short/json reports.
//   - internal/driver: coordinates bag collection per file and transports
//     diagnostic data to CLI commands.
package diag
