// Package prompt drives a form from the terminal: pick a panel, collapse or
// expand it, append elements or rewrite its value as raw JSON.
package prompt
