// Package main provides the tensorbook CLI, which runs the tensor tutorial
// notebook cell by cell in the terminal.
package main

import (
	"context"
	"os"
	"os/signal"

	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}
