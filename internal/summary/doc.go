// Package summary renders human-readable views of a tabs.Table: a
// per-category breakdown with sampled rows, a sorted category list with
// totals, a preview of the first rows and a column overview.
//
// Output is meant for people. Column widths and spacing are not stable and
// should not be parsed.
package summary
