package events

import "github.com/mbwilding/steam-achievement-manager/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

var (
	UI     = UITracer{}
	Search = SearchTracer{}
)

func (UITracer) Key(mode, key string) {
	logging.Trace("ui.key", map[string]interface{}{"mode": mode, "key": key})
}

func (UITracer) Mode(from, to string) {
	logging.Trace("ui.mode", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(appID uint32, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"app": appID, "cursor": cursor})
}

func (UITracer) Sort(column, order string) {
	logging.Trace("ui.sort", map[string]interface{}{"column": column, "order": order})
}

func (UITracer) Quit(reason string) {
	logging.Trace("ui.quit", map[string]interface{}{"reason": reason})
}

func (SearchTracer) Query(query string, matched bool, cursor int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "matched": matched, "cursor": cursor})
}

func (SearchTracer) Cancel(restored int) {
	logging.Trace("search.cancel", map[string]interface{}{"cursor": restored})
}
