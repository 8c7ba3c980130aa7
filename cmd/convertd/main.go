package main

import (
	"flag"
	"net/http"

	"github.com/sirupsen/logrus"

	"sealbox/internal/server"
	"sealbox/internal/store"
)

func main() {
	var (
		listen      = flag.String("listen", ":8000", "listen address")
		ffmpegBin   = flag.String("ffmpeg", "ffmpeg", "ffmpeg binary")
		bitrate     = flag.String("bitrate", "128k", "audio bitrate for extraction")
		stateDir    = flag.String("state-dir", "", "persist client key registrations under this directory")
		passthrough = flag.Bool("passthrough", false, "return uploads unconverted (testing)")
	)
	flag.Parse()

	log := logrus.New()

	var persist *store.RegistryFileStore
	if *stateDir != "" {
		var err error
		if persist, err = store.NewRegistryFileStore(*stateDir); err != nil {
			log.WithError(err).Fatal("opening state dir")
		}
	}
	registry, err := server.NewRegistry(persist)
	if err != nil {
		log.WithError(err).Fatal("loading client key registry")
	}

	var conv server.Converter = server.FFmpeg{Bin: *ffmpegBin, Bitrate: *bitrate}
	if *passthrough {
		conv = server.Passthrough{}
	}

	srv, err := server.New(log, registry, conv)
	if err != nil {
		log.WithError(err).Fatal("starting server")
	}

	log.WithField("listen", *listen).Info("convertd listening")
	if err := http.ListenAndServe(*listen, srv.Handler()); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
