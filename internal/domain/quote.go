// Package domain contains core business entities and rules.
package domain

// DefaultPage is the page requested when the caller does not name one.
const DefaultPage = 1

// QuotePage is one page of quotes exactly as the quotes API returned it
// (page number, last-page flag, quote objects).
// It is a pass-through value: nothing validates or reshapes it.
type QuotePage map[string]any

// QuoteOfTheDay is the featured quote exactly as the quotes API returned it.
// Like QuotePage it is passed through unmodified.
type QuoteOfTheDay map[string]any
