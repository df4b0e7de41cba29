package main

import (
	"log"
	"os"
	"time"

	"github.com/uduinc/ulog"
)

func main() {
	console := ulog.NewConsoleSink(os.Stdout, ulog.Config{MinSeverity: ulog.SeverityDebug})
	remote := ulog.NewRemoteSink(ulog.RemoteOptions{
		ServerURL: "http://localhost:8088",
		APIKey:    "sk-dev-test-key",
		Service:   "go-example-service",
	})
	defer remote.Shutdown()

	router := ulog.NewRouter(ulog.MultiSink{console, remote}, nil)
	logger := ulog.NewWithRouter(router, "example/main.go", ulog.Meta{"organization": "acme"})

	logger.Info("hello from the example", ulog.Meta{"user": "bruce"})
	logger.Warning("queue nearly full,", 3, "retries left")
	logger.Error("something went wrong", map[string]interface{}{"code": 502, "endpoint": "/api/orders"})

	// A facade that never identified itself gets redirected to the warning path.
	anonymous := ulog.NewWithRouter(router, "")
	anonymous.Info("this becomes a BAD LOG diagnostic")

	// Opt-in capture of stray stdlib log calls.
	logger.RedirectStdLog()
	log.Print("captured from the standard logger")

	// Let the async sender pick up the batch before exiting.
	time.Sleep(2 * time.Second)

	logger.Info("last message before exit")
}
