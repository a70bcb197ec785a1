// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ai defines the interfaces and configuration for embedding
// providers used to vectorize preprocessed sentences.
//
// The package follows a provider-agnostic design: the pipeline depends only
// on the Vectorizer interface, and concrete implementations live in
// subpackages:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//     (OpenAI, Ollama, LocalAI, vLLM, etc.)
//   - ai/mock: deterministic implementation for testing
//
// Vectorization is optional. A pipeline constructed without a Vectorizer
// stores sentences with null vectors; one constructed with a Vectorizer
// stores an embedding alongside each sentence.
package ai
