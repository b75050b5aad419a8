package events

import "github.com/mbwilding/steam-achievement-manager/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (AppTracer) TerminalRestore(reason string) {
	logging.Trace("app.terminal.restore", map[string]interface{}{"reason": reason})
}
