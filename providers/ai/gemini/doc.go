// Package gemini implements the [ai.Provider] interface for Google's Gemini
// generative language API.
//
// It handles request conversion from the generic [ai.ChatRequest] format to
// Gemini's generateContent wire format and response mapping back to
// [ai.ChatResponse].
//
// The primary entry point is [New], which reads GEMINI_API_KEY and
// GEMINI_API_BASE_URL from the environment. Use [GeminiProvider.WithAPIKey],
// [GeminiProvider.WithBaseURL], or [GeminiProvider.WithHttpClient] to
// configure the provider programmatically.
package gemini
