package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/tektronix/TekHSI"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := tekhsi.Connect(ctx, "192.168.0.1:5000")
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close()

	sink, bundles, closeBundles := tekhsi.NewChannelSink("fanout", 8)
	defer closeBundles()
	conn.AddSink(sink)

	go fanoutWorker("ingest", bundles)

	<-ctx.Done()
}

func fanoutWorker(name string, bundles <-chan *tekhsi.AcquisitionBundle) {
	for b := range bundles {
		fmt.Printf("[%s] acq %d with %d symbols at %s\n",
			name, b.TransID, b.Len(), time.Now().Format(time.RFC3339))
	}
}
