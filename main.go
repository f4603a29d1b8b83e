package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/vecdraw/vd/lib/log"
	"github.com/vecdraw/vd/vdcli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = log.WithDefault(ctx)

	err := vdcli.Run(ctx, os.Args[1:])
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	log.Error(ctx, err.Error())
	var uerr vdcli.UsageError
	if errors.As(err, &uerr) {
		os.Exit(2)
	}
	os.Exit(1)
}
