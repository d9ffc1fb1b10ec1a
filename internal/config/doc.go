// Package config loads editor settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A settings file, TOML or YAML by extension
//  3. ROPETEXT_* environment variables
//
// A missing settings file is not an error. Unknown keys are. Validate
// reports every invalid value at once rather than stopping at the first.
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Live Reload
//
// A Watcher reports changes to the settings file. Editors often save by
// writing a new file and renaming it over the old one, so the watcher
// follows the directory and filters by name. Bursts of events are
// debounced into one callback.
//
//	w, err := config.NewWatcher(path, func(ev config.Event) {
//	    cfg, err := config.Load(ev.Path)
//	    ...
//	})
//	go w.Run(ctx)
//
// Watch does the same in one call and blocks until ctx is done.
package config
