package events

import "github.com/atomicstack/pacsift/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) PackagesLoaded(total, upgradable int) {
	logging.Trace("app.packages-loaded", map[string]interface{}{
		"total":      total,
		"upgradable": upgradable,
	})
}

func (AppTracer) PackagesReloadFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.packages-reload-failed", map[string]interface{}{"error": err.Error()})
}
