package events

import "github.com/atomicstack/pacsift/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type SelectionTracer struct{}

type SyncTracer struct{}

var (
	UI        = UITracer{}
	Filter    = FilterTracer{}
	Selection = SelectionTracer{}
	Sync      = SyncTracer{}
)

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (UITracer) Cursor(cursor, total int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor, "total": total})
}

func (UITracer) Tab(tab string) {
	logging.Trace("ui.tab", map[string]interface{}{"tab": tab})
}

func (FilterTracer) Query(query string, matches int) {
	logging.Trace("filter.query", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) UpgradablesOnly(enabled bool) {
	logging.Trace("filter.upgradables-only", map[string]interface{}{"enabled": enabled})
}

func (SelectionTracer) Toggle(name string, selected bool, size int) {
	logging.Trace("selection.toggle", map[string]interface{}{
		"package":  name,
		"selected": selected,
		"size":     size,
	})
}

func (SelectionTracer) BulkToggle(size int) {
	logging.Trace("selection.bulk-toggle", map[string]interface{}{"size": size})
}

func (SyncTracer) Requested(packages []string) {
	logging.Trace("sync.requested", map[string]interface{}{"packages": packages})
}

func (SyncTracer) Started(packages []string) {
	logging.Trace("sync.started", map[string]interface{}{"packages": packages})
}

func (SyncTracer) SpawnFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("sync.spawn-failed", map[string]interface{}{"error": err.Error()})
}

func (SyncTracer) Exited(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("sync.exited", payload)
}

func (SyncTracer) Abandoned(running bool) {
	logging.Trace("sync.abandoned", map[string]interface{}{"running": running})
}
