package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ropetext/internal/config"
	"github.com/dshills/ropetext/internal/input/keymap"
)

// quitPrompt is shown by the first quit request while documents are dirty.
const quitPrompt = "unsaved changes, press C-q again to quit"

// eventLoop redraws after every event and stops when the screen is
// finalized or a handler returns an error. ErrQuit ends a normal session.
func (app *Application) eventLoop() error {
	for {
		app.view.Update()

		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

// handleEvent routes one screen event.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
		app.view.Invalidate()
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case config.Config:
			app.applyConfig(data)
			app.setMessage("settings reloaded")
		case error:
			return data
		}
	}
	return nil
}

// handleKey runs the bound action on the active document. Actions the
// buffer cannot run itself are handled here.
func (app *Application) handleKey(ev *tcell.EventKey) error {
	doc := app.documents.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}

	action, ran := app.keymap.Handle(doc.Buffer, ev)
	if action != keymap.ActionQuit {
		app.quitArmed = false
	}
	if ran {
		if app.message != "" {
			app.setMessage("")
		}
		return nil
	}

	switch action {
	case keymap.ActionSave:
		app.save(doc)
	case keymap.ActionQuit:
		return app.quit()
	case keymap.ActionNext:
		app.show(app.documents.Next())
	case keymap.ActionPrev:
		app.show(app.documents.Previous())
	}
	return nil
}

func (app *Application) save(doc *Document) {
	log := app.log.WithField("path", doc.Path)
	if err := doc.Save(); err != nil {
		log.Error("%v", err)
		app.setMessage(err.Error())
		return
	}
	log.Info("saved")
	app.setMessage("saved " + doc.Name)
}

// quit returns ErrQuit unless a document has unsaved changes, in which
// case it asks for a second request.
func (app *Application) quit() error {
	if app.quitArmed || !app.documents.HasDirty() {
		return ErrQuit
	}
	app.quitArmed = true
	app.log.Warn("quit requested: %v", ErrUnsavedChanges)
	app.setMessage(quitPrompt)
	return nil
}

func (app *Application) show(doc *Document) {
	if doc == nil || app.view == nil {
		return
	}
	app.view.SetBuffer(doc.Buffer, doc.Name)
	app.setMessage("")
}

func (app *Application) setMessage(msg string) {
	app.message = msg
	if app.view != nil {
		app.view.SetMessage(msg)
	}
}
