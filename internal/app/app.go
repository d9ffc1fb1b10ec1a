// Package app wires the editor together: the open documents, the
// terminal screen, the keymap, the settings and the logger.
package app

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ropetext/internal/config"
	"github.com/dshills/ropetext/internal/engine/buffer"
	"github.com/dshills/ropetext/internal/input/keymap"
	"github.com/dshills/ropetext/internal/renderer/view"
)

// Application owns the documents and runs the terminal event loop.
type Application struct {
	opts Options
	log  *Logger

	cfg       config.Config
	keymap    *keymap.Keymap
	documents *DocumentManager

	screen tcell.Screen
	view   *view.View

	running   atomic.Bool
	quitArmed bool
	message   string
}

// Options configures the application.
type Options struct {
	// ConfigPath is the settings file. It is watched for changes while
	// the editor runs. Empty means built-in settings only.
	ConfigPath string

	// KeymapPath is a TOML file of bindings merged over the defaults.
	KeymapPath string

	// Files are opened on startup. With none, a scratch buffer is used.
	Files []string

	// LogLevel overrides the settings file when set.
	LogLevel string

	// Logger receives application logs. Nil means GetLogger().
	Logger *Logger

	// LookupEnv reads ROPETEXT_* overrides. Nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// New loads settings and keymap and opens the startup files.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		log:  opts.Logger,
	}
	if app.log == nil {
		app.log = GetLogger()
	}
	if app.opts.LookupEnv == nil {
		app.opts.LookupEnv = os.LookupEnv
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes the components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Settings. A bad file is reported and the defaults are used.
	cfg, err := app.loadConfig()
	if err != nil {
		app.log.WithField("path", app.opts.ConfigPath).Warn("using default settings: %v", err)
		cfg = config.Default()
		if app.opts.LogLevel != "" {
			cfg.LogLevel = app.opts.LogLevel
		}
	}
	app.cfg = cfg
	app.log.SetLevel(ParseLogLevel(cfg.LogLevel))

	// 2. Keymap. User bindings must be valid; a typo is not silently ignored.
	app.keymap = keymap.Default()
	if app.opts.KeymapPath != "" {
		user, err := keymap.LoadFile(app.opts.KeymapPath)
		if err != nil {
			return NewOperationError("load keymap", app.opts.KeymapPath, err)
		}
		app.keymap.Merge(user)
	}

	// 3. Documents.
	app.documents = NewDocumentManager(app.bufferOptions()...)
	for _, file := range app.opts.Files {
		doc, err := app.documents.Open(file)
		if err != nil {
			app.log.Warn("%v", err)
			app.setMessage(err.Error())
			continue
		}
		app.log.WithFields(map[string]any{
			"path":   doc.Path,
			"ending": doc.Format.Ending.String(),
			"length": doc.Buffer.Len(),
		}).Info("opened")
	}
	if app.documents.Count() == 0 {
		app.documents.CreateScratch()
	}
	return nil
}

// loadConfig reads the settings file, then the environment, then the
// LogLevel option, and validates the result.
func (app *Application) loadConfig() (config.Config, error) {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(app.opts.LookupEnv); err != nil {
		return cfg, err
	}
	if app.opts.LogLevel != "" {
		cfg.LogLevel = app.opts.LogLevel
	}
	return cfg, cfg.Validate()
}

func (app *Application) bufferOptions() []buffer.Option {
	return []buffer.Option{
		buffer.WithTabWidth(app.cfg.TabWidth),
		buffer.WithHardTabs(app.cfg.HardTabs),
		buffer.WithHistoryLimit(app.cfg.HistoryLimit),
		buffer.WithObserver(app.observe),
	}
}

func (app *Application) viewOptions() []view.Option {
	return []view.Option{
		view.WithLineNumbers(app.cfg.LineNumbers),
		view.WithScrollMargin(app.cfg.ScrollMargin),
	}
}

// observe logs every history change at debug level.
func (app *Application) observe(ev buffer.Event) {
	if app.log.Level() > LogLevelDebug {
		return
	}
	app.log.WithFields(map[string]any{
		"buffer":     ev.Buffer.String(),
		"action":     ev.Action.String(),
		"length":     ev.Length,
		"selections": ev.Selections,
		"undo":       ev.UndoDepth,
		"redo":       ev.RedoDepth,
	}).Debug("%s", ev.Type)
}

// applyConfig switches every open document and the view to cfg.
func (app *Application) applyConfig(cfg config.Config) {
	app.cfg = cfg
	app.log.SetLevel(ParseLogLevel(cfg.LogLevel))
	app.documents.Each(func(d *Document) {
		d.Buffer.SetTabWidth(cfg.TabWidth)
		d.Buffer.SetHardTabs(cfg.HardTabs)
		d.Buffer.SetHistoryLimit(cfg.HistoryLimit)
	})
	if app.view != nil {
		app.view.SetLineNumbers(cfg.LineNumbers)
		app.view.SetScrollMargin(cfg.ScrollMargin)
	}
}

// SetScreen sets the terminal screen. Must be called before Run; without
// it Run opens the real terminal.
func (app *Application) SetScreen(s tcell.Screen) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.screen = s
	return nil
}

// Run draws the active document and handles input until the user quits
// or ctx is done. It owns the screen and finalizes it on return.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.start(); err != nil {
		return err
	}
	defer app.screen.Fini()

	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	wg.Go(func() { app.watchConfig(ctx) })
	wg.Go(func() {
		<-ctx.Done()
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(ErrQuit))
	})

	app.log.Info("running with %d document(s)", app.documents.Count())
	err := app.eventLoop()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// start opens the screen and creates the view of the active document.
func (app *Application) start() error {
	doc := app.documents.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}

	if app.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return NewOperationError("init", "screen", err)
		}
		app.screen = s
	}
	if err := app.screen.Init(); err != nil {
		return NewOperationError("init", "screen", err)
	}

	app.view = view.New(app.screen, doc.Buffer, doc.Name, app.viewOptions()...)
	if app.message != "" {
		app.view.SetMessage(app.message)
	}
	return nil
}

// watchConfig reloads the settings file when it changes and hands the
// result to the event loop.
func (app *Application) watchConfig(ctx context.Context) {
	if app.opts.ConfigPath == "" {
		return
	}
	err := config.Watch(ctx, app.opts.ConfigPath, func(ev config.Event) {
		cfg, err := app.loadConfig()
		if err != nil {
			app.log.WithField("path", ev.Path).Warn("settings not reloaded: %v", err)
			return
		}
		app.log.WithFields(map[string]any{"path": ev.Path, "op": ev.Op.String()}).Info("settings reloaded")
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(cfg))
	})
	if err != nil {
		app.log.WithField("path", app.opts.ConfigPath).Warn("not watching settings: %v", err)
	}
}

// Close releases every document.
func (app *Application) Close() {
	app.documents.CloseAll()
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the settings in effect.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Keymap returns the merged keymap.
func (app *Application) Keymap() *keymap.Keymap {
	return app.keymap
}

// Documents returns the document manager.
func (app *Application) Documents() *DocumentManager {
	return app.documents
}

// ActiveDocument returns the active document (may be nil).
func (app *Application) ActiveDocument() *Document {
	return app.documents.Active()
}
