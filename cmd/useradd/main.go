package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/blogful/internal/iocli"
	"github.com/iudanet/blogful/internal/server/config"
	"github.com/iudanet/blogful/internal/server/storage/backends"
	"github.com/iudanet/blogful/internal/useradd"
)

func main() {
	defaultDSN, err := config.DatabaseURL()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dsn := flag.String("d", defaultDSN, "database DSN (sqlite path, sqlite://, postgres://, bolt://)")
	userName := flag.String("u", "", "user name")
	fullName := flag.String("n", "", "full name")
	nickname := flag.String("k", "", "nickname (optional)")
	flag.Parse()

	if err := run(*dsn, useradd.Options{
		UserName: *userName,
		FullName: *fullName,
		Nickname: *nickname,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dsn string, opts useradd.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := backends.Open(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	_, err = useradd.Run(ctx, opts, iocli.NewStdio(), store, time.Now)
	return err
}
