// Package pagesum provides a CLI tool that turns web pages into structured
// markdown summaries. It fetches each URL from an input list, extracts the
// readable content, builds a fixed summarization prompt, sends it to an LLM
// completion backend, and writes one markdown file per URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, gemini/, sqlite/).
package pagesum
