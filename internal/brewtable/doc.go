// Package brewtable turns brew log records into a sortable table.
//
// Allowed here:
// - the fixed column table and per-rule cell formatting
// - sort state transitions, value comparison and the visible row order
//
// Not allowed here:
// - terminal styling or layout (see internal/tui)
// - anything that mutates records
package brewtable
