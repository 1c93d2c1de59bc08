// Package report renders build results and the content inventory.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable text for terminal display
//   - MarkdownWriter: Markdown summary with tables and alerts
//   - JSONWriter: structured JSON for tool integration
//   - InventoryWriter: Markdown listing of the page content
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter.
package report
