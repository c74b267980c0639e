package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

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

	access, err := conn.AccessData(ctx, tekhsi.NewData)
	if err != nil {
		log.Fatalf("access data: %v", err)
	}
	defer access.Release()

	wfm, err := access.GetData("ch1")
	if err != nil {
		log.Fatalf("get data: %v", err)
	}

	analog, ok := wfm.(*tekhsi.AnalogWaveform)
	if !ok {
		log.Fatalf("ch1 is not an analog channel (%T)", wfm)
	}

	fmt.Printf("acq %d: %d samples, %s per division\n",
		access.Bundle().TransID, analog.RecordLength(), analog.VerticalUnits)
	for i := 0; i < analog.RecordLength() && i < 10; i++ {
		fmt.Printf("  t=%.3e %s  v=%.6f %s\n",
			analog.Horizontal.TimeAt(i), analog.Horizontal.Units,
			analog.ValueAt(i), analog.VerticalUnits)
	}
}
