package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snapchat-marketing-api/internal/cli"
)

var (
	executeCmd  = cli.Execute
	mapExitCode = cli.ExitCode
	terminate   = os.Exit

	stderr io.Writer = os.Stderr
)

func run(args []string) int {
	// Inicializa configuração de logs
	configureLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := executeCmd(ctx, args); err != nil {
		fmt.Fprintln(stderr, cli.FormatError(err))
		return mapExitCode(err)
	}
	return 0
}

func main() {
	terminate(run(os.Args[1:]))
}

// configureLogger configura o formato dos logs emitidos antes da configuração ser carregada
func configureLogger() {
	logrus.SetOutput(stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
