// Package stream runs Optional values through channel pipelines with
// controlled concurrency.
//
// Stage constructors (Map, Then, Try, OrElse, Filter, Tee) lift per-value
// functions into engines; Run and Turnout fan an engine across worker
// goroutines; Finally collapses the stream back to plain values through
// handlers for the present, empty and cancelled paths.
//
// Empty Optionals flow through every stage without invoking its callable,
// so a value that went empty early in the pipeline skips all later work.
// Each value is owned by exactly one goroutine at a time; stages share no
// state. Cancellation (context) stops workers and, unless disabled via
// core.WithFlushOptions, flushes unprocessed inputs downstream as empty.
package stream
