// Package chunks packages per-page conversion results for retrieval
// pipelines.
//
// A PageChunk pairs the rendered markdown of one page with its structural
// metadata: block and table geometry, image placements, outline items and an
// optional positioned word list. Chunks serialize to JSON or JSON Lines for
// vector store ingestion.
package chunks
