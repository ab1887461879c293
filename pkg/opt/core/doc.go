// Package core contains pipeline plumbing utilities: channel helpers,
// worker configuration via context, and the conveyor that drives stages.
// It does not define business logic; instead it provides the scaffolding
// for package stream to run Optional pipelines with controlled
// concurrency.
package core
