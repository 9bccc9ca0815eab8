// Package main provides the entry point for the serpmaster CLI.
//
// serpmaster is a command-line client for the SERP-Master SEO analysis
// backend. It runs technical audits, competitor comparisons, keyword
// research, and niche analysis, and exports the results as Markdown,
// HTML, CSV, or JSON reports.
//
// Usage:
//
//	serpmaster audit <url>
//	serpmaster compare <your-site> <competitor>...
//	serpmaster keywords <query>
//
// See --help for all available options.
package main

// main is the entry point for serpmaster.
func main() {
	Execute()
}
