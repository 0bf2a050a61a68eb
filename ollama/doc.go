// Package ollama is a minimal client for the parts of the Ollama HTTP API
// the harness needs: pulling a model and listing local models.
//
//	client, err := ollama.New("http://127.0.0.1:11434")
//	if err != nil {
//	    return err
//	}
//	if _, err := client.Pull(ctx, "nomic-embed-text"); err != nil {
//	    return err
//	}
//	ok, err := client.HasModel(ctx, "nomic-embed-text")
package ollama
