package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/gutters"
	"github.com/danmuck/gutters/internal/logging"
)

func main() {
	var (
		addr     string
		value    float64
		count    int
		hailOnly bool
		echo     bool
	)
	flag.StringVar(&addr, "addr", "127.0.0.1:9400", "gutterd address")
	flag.Float64Var(&value, "value", 42.0, "log value to throw")
	flag.IntVar(&count, "count", 1, "number of logs to throw")
	flag.BoolVar(&hailOnly, "hail-only", false, "send a single hail byte and exit")
	flag.BoolVar(&echo, "echo", false, "pick up the echoed log after each throw (gutterd must run with echo = true)")
	flag.Parse()

	logging.ConfigureRuntime()

	if err := run(addr, value, count, hailOnly, echo); err != nil {
		fmt.Fprintf(os.Stderr, "gutterctl: %v\n", err)
		os.Exit(1)
	}
}

func run(addr string, value float64, count int, hailOnly, echo bool) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial gutterd: %w", err)
	}
	defer conn.Close()

	if hailOnly {
		if err := gutters.Hail(conn); err != nil {
			return fmt.Errorf("hail: %w", err)
		}
		log.Info().Str("addr", addr).Msg("gutterctl hailed")
		return nil
	}

	for i := 0; i < count; i++ {
		payload := value
		if err := gutters.ThrowAndWait(conn, &payload); err != nil {
			return fmt.Errorf("throw log %d: %w", i+1, err)
		}
		log.Info().Int("log", i+1).Float64("value", payload).Msg("gutterctl rendezvous complete")

		if !echo {
			continue
		}
		var back float64
		if err := gutters.PickUp(conn, &back); err != nil {
			return fmt.Errorf("pick up echo %d: %w", i+1, err)
		}
		log.Info().Int("log", i+1).Float64("echoed", back).Msg("gutterctl echo received")
	}
	return nil
}
