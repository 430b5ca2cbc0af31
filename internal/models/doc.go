// Package models provides functionality for listing and categorizing
// the models available behind the completion provider's
// OpenAI-compatible API. It helps users discover which language models
// their API key can use for pronunciation prompts.
package models
