package events

import "github.com/mbwilding/steam-achievement-manager/internal/logging"

type CatalogTracer struct{}

type CommitTracer struct{}

type PrefsTracer struct{}

var (
	Catalog = CatalogTracer{}
	Commit  = CommitTracer{}
	Prefs   = PrefsTracer{}
)

func (CatalogTracer) Fetch(appID uint32, count int, err error) {
	payload := map[string]interface{}{"app": appID, "count": count}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("catalog.fetch", payload)
}

func (CatalogTracer) Import(path string, apps, achievements int) {
	logging.Trace("catalog.import", map[string]interface{}{"path": path, "apps": apps, "achievements": achievements})
}

func (CommitTracer) Partition(appID uint32, set, clear int) {
	logging.Trace("commit.partition", map[string]interface{}{"app": appID, "set": set, "clear": clear})
}

func (CommitTracer) Batch(appID uint32, clear bool, names int, err error) {
	payload := map[string]interface{}{"app": appID, "clear": clear, "names": names}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("commit.batch", payload)
}

func (CommitTracer) Result(appID uint32, set, cleared, failed int) {
	logging.Trace("commit.result", map[string]interface{}{"app": appID, "set": set, "cleared": cleared, "failed": failed})
}

func (PrefsTracer) Load(column, order string) {
	logging.Trace("prefs.load", map[string]interface{}{"column": column, "order": order})
}

func (PrefsTracer) LoadFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("prefs.load.error", map[string]interface{}{"error": err.Error()})
}

func (PrefsTracer) SaveFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("prefs.save.error", map[string]interface{}{"error": err.Error()})
}
