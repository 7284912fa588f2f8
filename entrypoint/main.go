package main

import (
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"medscribe.com/mre/api"
	"medscribe.com/mre/logger"
	"medscribe.com/mre/pipeline"
	"medscribe.com/mre/utils"
	"medscribe.com/mre/worker"
	"net/http"
	"os"
	"time"
)

type Config struct {
	ResourcePath  string `envconfig:"MRE_RESOURCE_PATH" required:"true"`
	RestAPIActive bool   `envconfig:"MRE_REST_API_ACTIVE" default:"false"`
	RestAPIPort   string `envconfig:"MRE_REST_API_PORT" default:"10000"`
	WorkerActive  bool   `envconfig:"MRE_WORKER_ACTIVE" default:"true"`
}

const engineStartMaxRetries = 5

func main() {
	// wrap mode: relay a child process's JSON logs and panics
	if len(os.Args) > 1 {
		logger.WrapProcess(os.Args[1], os.Args[2:]...)
		return
	}
	logger.SetupLogging()
	mreLogger := logger.NewLogger("Main")
	fatalErrLogger := mreLogger.Fatal().Caller()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	// load the engine, retrying while resources settle on fresh deploys
	engineChannel := make(chan *pipeline.Engine)
	go func() {
		for retry := 0; retry < engineStartMaxRetries; retry++ {
			engine, err := pipeline.NewEngine(pipeline.EngineParams{
				ResourceFolder: config.ResourcePath,
			})
			if err != nil {
				mreLogger.Err(err).Msg("Failed to start medical record engine. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			utils.GlobalStringStore().Lock()
			mreLogger.Info().Msg("Engine loaded")
			engineChannel <- engine
			return
		}
		fatalErrLogger.Msg("Could not start engine after 5 retries, exiting")
		os.Exit(1)
	}()

	// block until the engine loads
	engine := <-engineChannel

	if config.RestAPIActive {
		go func() {
			mreLogger.Info().Msg("Starting API service")
			handlers := &api.Handlers{Engine: engine}
			mux := http.NewServeMux()
			handlers.Register(mux)
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			mreLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, mux)
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}

	if !config.WorkerActive {
		mreLogger.Info().Msg("Worker disabled, serving API only")
		select {}
	}

	mreLogger.Info().Msg("Start MRE Worker")
	ppln := engine.Pipeline()
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			mreLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			mreLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}
