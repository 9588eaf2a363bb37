// Package quiz runs one timed multiplication journey: it asks questions,
// judges answers, tracks progress toward stars, badges and planets, and
// hands a summary to the results view when the countdown reaches zero.
//
// Everything in this package is single-threaded. Callers serialize timer
// ticks and input, either through bubbletea's update loop or through a
// Runner.
package quiz
