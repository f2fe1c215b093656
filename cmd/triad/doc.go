// Triad analyzes code snippets with three language-model agents.
//
// A Builder rewrites the snippet, a Reviewer critiques the original and an
// Explainer walks through the differences. The same pipeline is served over
// HTTP and available from the command line.
//
// Usage:
//
//	triad serve                          # POST /analyze on :8080
//	triad analyze --file app.py          # analyze a file
//	cat main.go | triad analyze -l go    # analyze stdin
//	triad provider list                  # backends in selection order
//	triad provider doctor                # ping configured backends
//	triad config init                    # write the default config file
//
// Backends are chosen from GROQ_API_KEY, GEMINI_API_KEY, OPENAI_API_KEY and
// ANTHROPIC_API_KEY, in that order.
package main
