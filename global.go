package ulog

import (
	"os"
	"sync"
)

const defaultCodeRepository = "uduinc/core"

var (
	processOnce sync.Once
	processMeta Meta

	routerOnce    sync.Once
	defaultRouter *Router
)

func buildProcessMeta() {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "localhost"
	}
	processMeta = Meta{
		"hostname":       hostname,
		"codeRepository": codeRepositoryDefault(),
	}
}

// ProcessMeta returns a copy of the process-wide metadata record, computed
// once at first use and read-only afterwards. hostname from it overrides
// every record; codeRepository from it only fills records that lack one.
func ProcessMeta() Meta {
	processOnce.Do(buildProcessMeta)
	return processMeta.Clone()
}

// Default returns the shared process router, wiring its sinks from the
// environment on first use: always a console sink, plus a remote export sink
// when ULOG_EXPORT_URL is set.
func Default() *Router {
	routerOnce.Do(func() {
		cfg := loadConfig()
		sinks := MultiSink{NewConsoleSink(os.Stdout, cfg)}
		if cfg.ExportURL != "" {
			sinks = append(sinks, NewRemoteSink(RemoteOptions{
				ServerURL: cfg.ExportURL,
				APIKey:    cfg.ExportKey,
				Service:   cfg.Service,
			}))
		}
		var sink Sink = sinks
		if len(sinks) == 1 {
			sink = sinks[0]
		}
		defaultRouter = NewRouter(sink, nil)
	})
	return defaultRouter
}
