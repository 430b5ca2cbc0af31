// Package pronounce fetches phonetic pronunciation guides for English
// words from a hosted LLM completion endpoint. For each word it returns
// a USA-style Latin respelling and a Telugu-script rendering of the same
// sounds. All per-word failures are represented as data, never as
// errors escaping the fetcher.
package pronounce
