// Package newsbytes provides a news-article scraping and summarization
// pipeline. It fetches article pages over HTTP, heuristically extracts
// structured article data (title, body, image, source), and produces a
// bounded summary with a category label, falling back to deterministic
// local text processing when AI summarization is unavailable or fails.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package newsbytes
