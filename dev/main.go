package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"noticeboard-tally/dev/fakeboard"
	"noticeboard-tally/lib/serviceutil"
	"noticeboard-tally/lib/telemetry"
	"noticeboard-tally/services/tally"

	"github.com/joho/godotenv"
	"github.com/mazen160/go-random"
)

const (
	envFile    = ".env"
	configFile = "noticeboard.local.json5"
	sessionEnv = "IITBHU_SESSION"
)

// devSession returns the session stored in .env, writing a new random one
// when there is none (or when recreating).
func devSession(recreate bool) (string, error) {
	if !recreate {
		env, err := godotenv.Read(envFile)
		if err == nil && env[sessionEnv] != "" {
			return env[sessionEnv], nil
		}
	}

	session, err := random.String(24)
	if err != nil {
		return "", err
	}
	err = godotenv.Write(map[string]string{sessionEnv: session}, envFile)
	if err != nil {
		return "", err
	}
	slog.Info("wrote dev session", "file", envFile)
	return session, nil
}

func writeConfig(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	contents := fmt.Sprintf(`// generated by dev/main.go, delete it to scrape the real notice board
{
	base_url: "http://localhost:%s",
	disable_cloudflare_bypass: true,
	timeout_seconds: 3,
}
`, port)
	err = os.WriteFile(configFile, []byte(contents), 0644)
	if err != nil {
		return err
	}
	slog.Info("wrote dev config", "file", configFile)
	return nil
}

func create(addr string, recreate bool) (string, error) {
	_, err := os.Stat("go.mod")
	if os.IsNotExist(err) {
		return "", fmt.Errorf("the dev environment must be created in the repository root (the same directory as the 'go.mod' file)")
	}

	session, err := devSession(recreate)
	if err != nil {
		return "", err
	}
	return session, writeConfig(addr)
}

func main() {
	recreate := flag.Bool("recreate", false, "recreate the dev session from scratch")
	addr := flag.String("addr", "localhost:8080", "address the fake notice board listens on")
	seed := flag.Int64("seed", 1, "seed of the generated board")
	topics := flag.Int("topics", 120, "number of threads on the generated board")
	pageSize := flag.Int("page-size", 20, "threads per listing page")
	flag.Parse()

	telemetry.InitSlog(false)

	session, err := create(*addr, *recreate)
	if err != nil {
		serviceutil.Fatal("failed to create dev environment", err)
	}

	board := fakeboard.Generate(*seed, *topics, *pageSize)
	board.Session = session
	slog.Info(
		"serving fake notice board",
		"addr", *addr,
		"pages", board.Pages(),
		"intern", board.Expected(tally.ModeIntern).Sum(),
		"ppo", board.Expected(tally.ModePPO).Sum(),
	)

	ctx := serviceutil.SignalContext()
	server := &http.Server{
		Addr:              *addr,
		Handler:           board.Handler(),
		ReadHeaderTimeout: time.Second * 5,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		serviceutil.Fatal("fake notice board stopped", err)
	}
}
