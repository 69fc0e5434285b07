// Package summary computes the derived figures shown by the API: totals,
// budget usage, goal progress, investment returns and chart data.
//
// All functions are pure. They never touch the database and only work on
// the model values passed in.
package summary
