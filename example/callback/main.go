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

// The callback runs on the pipeline worker for every committed acquisition,
// so no acquisition is missed. Keep it short: the next commit waits for it.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	callback := func(b *tekhsi.AcquisitionBundle) {
		for _, name := range b.Symbols() {
			wfm, _ := b.Waveform(name)
			fmt.Printf("%s acq=%d %s: %d samples\n",
				time.Now().Format(time.RFC3339Nano), b.TransID, name, wfm.RecordLength())
		}
	}

	conn, err := tekhsi.Connect(ctx, "192.168.0.1:5000",
		tekhsi.WithActiveSymbols("ch1", "ch3"),
		tekhsi.WithCallback(callback),
	)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close()

	<-ctx.Done()
}
