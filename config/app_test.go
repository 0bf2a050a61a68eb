package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/ragenv/config"
)

const fullApplicationConf = `
indexing_state_filename = "indexing_state.json"

embedding_llm {
  url = "http://x"
  model_name = "m1"
  api_type = "rest"
  vector_length = 768
}

generative_llm {
  url = "http://127.0.0.1:11435"
  model_name = "llama3.1:8b"
}

rag {
  top_k_hits = 5
  max_output_tokens = 512
  chunk_size = 1000
  max_tokens = 4096
}
`

func TestLoadApp_Full(t *testing.T) {
	logger, buf := captureLogger()

	cfg, err := config.LoadApp(writeConf(t, fullApplicationConf), config.WithLogger(logger))
	require.NoError(t, err)

	require.NotNil(t, cfg.IndexingStateFilename)
	assert.Equal(t, "indexing_state.json", *cfg.IndexingStateFilename)
	require.NotNil(t, cfg.EmbeddingLlm)
	assert.Equal(t, config.EmbeddingLlm{
		URL:          "http://x",
		ModelName:    "m1",
		APIType:      "rest",
		VectorLength: 768,
	}, *cfg.EmbeddingLlm)
	require.NotNil(t, cfg.GenerativeLlm)
	assert.Equal(t, config.GenerativeLlm{URL: "http://127.0.0.1:11435", ModelName: "llama3.1:8b"}, *cfg.GenerativeLlm)
	require.NotNil(t, cfg.Rag)
	assert.Equal(t, config.Rag{TopKHits: 5, MaxOutputTokens: 512, ChunkSize: 1000, MaxTokens: 4096}, *cfg.Rag)

	assert.Empty(t, buf.String())
}

func TestLoadApp_EmbeddingMissingVectorLength(t *testing.T) {
	logger, buf := captureLogger()
	conf := `
embedding_llm {
  url = "http://x"
  model_name = "m1"
  api_type = "rest"
}
generative_llm {
  url = "http://y"
  model_name = "m2"
}
`

	cfg, err := config.LoadApp(writeConf(t, conf), config.WithLogger(logger))
	require.NoError(t, err)

	assert.Nil(t, cfg.EmbeddingLlm, "nested records are all-or-nothing")
	require.NotNil(t, cfg.GenerativeLlm)
	assert.Equal(t, "m2", cfg.GenerativeLlm.ModelName)

	records := logRecords(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "embedding_llm", records[0]["field"])
	assert.Contains(t, records[0]["err"], "vector_length")
	assert.Contains(t, records[0]["err"], config.ErrTypeMismatch.Error())
}

func TestLoadApp_EmbeddingSchemaDirectly(t *testing.T) {
	logger, buf := captureLogger()
	conf := `
url = "http://x"
model_name = "m1"
api_type = "rest"
`

	got, err := config.Load(writeConf(t, conf), config.EmbeddingLlmSchema, config.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, config.EmbeddingLlm{URL: "http://x", ModelName: "m1", APIType: "rest"}, *got)
	assert.Empty(t, buf.String(), "top-level missing fields are silent")
}

func TestLoadApp_RagAbsent(t *testing.T) {
	logger, buf := captureLogger()
	conf := `
indexing_state_filename = "state.json"
embedding_llm { url = "http://x", model_name = "m1", api_type = "rest", vector_length = 768 }
generative_llm { url = "http://y", model_name = "m2" }
`

	cfg, err := config.LoadApp(writeConf(t, conf), config.WithLogger(logger))
	require.NoError(t, err)

	assert.Nil(t, cfg.Rag)
	assert.NotNil(t, cfg.EmbeddingLlm)
	assert.NotNil(t, cfg.GenerativeLlm)
	assert.Empty(t, buf.String())
}

func TestLoadApp_WrongTypeKeepsSiblings(t *testing.T) {
	logger, buf := captureLogger()
	conf := `
indexing_state_filename = "state.json"
embedding_llm { url = "http://x", model_name = "m1", api_type = "rest", vector_length = 768 }
generative_llm = "not a section"
rag { top_k_hits = many, max_output_tokens = 1, chunk_size = 2, max_tokens = 3 }
`

	cfg, err := config.LoadApp(writeConf(t, conf), config.WithLogger(logger))
	require.NoError(t, err)

	require.NotNil(t, cfg.IndexingStateFilename)
	require.NotNil(t, cfg.EmbeddingLlm)
	assert.Equal(t, 768, cfg.EmbeddingLlm.VectorLength)
	assert.Nil(t, cfg.GenerativeLlm)
	assert.Nil(t, cfg.Rag)
	assert.ElementsMatch(t, []string{"generative_llm", "rag"}, loggedFields(t, buf))
}

func TestLoadApp_BundledConfig(t *testing.T) {
	cfg, err := config.LoadApp("application.conf")
	require.NoError(t, err)

	require.NotNil(t, cfg.EmbeddingLlm)
	assert.Equal(t, "nomic-embed-text", cfg.EmbeddingLlm.ModelName)
	require.NotNil(t, cfg.GenerativeLlm)
	assert.Equal(t, "llama3.1:8b", cfg.GenerativeLlm.ModelName)
	assert.NotNil(t, cfg.Rag)
}

func TestLoadApp_UnquotedAndConcatenatedStrings(t *testing.T) {
	logger, buf := captureLogger()
	conf := `
host = "127.0.0.1"
indexing_state_filename = state.json

embedding_llm {
  url = "http://"${host}":11434"
  model_name = nomic embed
  api_type = rest
  vector_length = 768
}
`

	cfg, err := config.LoadApp(writeConf(t, conf), config.WithLogger(logger))
	require.NoError(t, err)

	require.NotNil(t, cfg.IndexingStateFilename)
	assert.Equal(t, "state.json", *cfg.IndexingStateFilename)
	require.NotNil(t, cfg.EmbeddingLlm)
	assert.Equal(t, config.EmbeddingLlm{
		URL:          "http://127.0.0.1:11434",
		ModelName:    "nomic embed",
		APIType:      "rest",
		VectorLength: 768,
	}, *cfg.EmbeddingLlm)

	assert.Empty(t, buf.String())
}
