// SPDX-License-Identifier: MIT

// Package record defines the per-trial result tuple and the places it goes.
//
// Text format, one record per line:
//
//	<param>, <iterations>, <duration_seconds>
//
// param is written in the shortest form that parses back to the same float64,
// iterations as a decimal integer and the duration in seconds with nine
// decimals. Readers also accept space-delimited lines and lines with only
// param and iterations (duration 0), the layout of older result files.
//
// Sinks:
//
//   - FileSink appends one line per record and flushes each write.
//   - Collector keeps records in memory.
//   - SQLiteStore writes records under a run id to a SQLite database.
//
// Summarize groups records by parameter and reports per-parameter statistics
// of the iteration counts.
package record
