package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/vegetable-set/demo"
	"github.com/tuannh982/vegetable-set/vegetable"
)

func main() {
	interactive := flag.Bool("i", false, "start the interactive shell instead of the demo")
	level := flag.String("log-level", "info", "log level [debug|info|warn|error]")
	initf := flag.String("init", "", "file of shell commands to run before the prompt")
	flag.Parse()
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Fatal("bad log level")
	}
	log.SetLevel(lvl)
	demo.InitDisplay()
	if !*interactive {
		if err := demo.Run(); err != nil {
			log.WithError(err).Fatal("demo failed")
		}
		return
	}
	sh := demo.NewShell(vegetable.NewSet())
	if err := sh.LoadFile(*initf); err != nil {
		log.WithError(err).Error("init file skipped")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hookShutdownSignal(cancel)
	if err := sh.Start(ctx); err != nil {
		log.WithError(err).Fatal("could not start shell")
	}
	sh.Serve()
}

func hookShutdownSignal(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	cancel()
}
