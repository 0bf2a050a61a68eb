// Package environment runs the model servers a test session depends on.
//
// Setup reads the embedding and generative model names from a loaded
// config.AppConfig and starts one Ollama container per model, each on its
// own host port and with its own cache directory. A container counts as
// started once its log reports that it is listening; its model is then
// pulled over HTTP. Teardown terminates the containers.
//
// # Settings
//
// Ports, image, cache directories and the startup timeout come from
// Settings, loaded by LoadSettings with this precedence:
//
//  1. Default values
//  2. Settings file (./ragenv.yaml unless given)
//  3. Environment variables (RAGENV_ prefix, e.g. RAGENV_EMBEDDING_PORT)
//  4. CLI flags
//
// # Usage
//
//	app, err := config.LoadApp(settings.AppConfig)
//	if err != nil {
//	    return err
//	}
//	env, err := environment.Setup(ctx, app, settings)
//	if err != nil {
//	    return err
//	}
//	defer env.Teardown(ctx)
package environment
