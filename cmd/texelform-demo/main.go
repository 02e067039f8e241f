package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/framegrace/texelform/config"
	"github.com/framegrace/texelform/internal/devshell"
	"github.com/framegrace/texelform/texelui/core"
	"github.com/framegrace/texelform/texelui/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "texelform-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("texelform-demo", flag.ContinueOnError)
	formName := fs.String("form", "login", "form to run ("+strings.Join(devshell.Forms(), ", ")+")")
	configPath := fs.String("config", "", "JSON or TOML config file, reloaded on change (default: system config)")
	logPath := fs.String("log", "", "append logs and interaction traces to this file")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdin and stdout must be a terminal")
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
		core.SetLogger(log.New(f, "texelform: ", log.LstdFlags))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	th := theme.Get()
	if err := config.Err(); err != nil {
		log.Printf("texelform-demo: system config: %v", err)
	}
	var started func(*devshell.Session)
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		th = theme.FromConfig(cfg)
		path := *configPath
		started = func(sess *devshell.Session) {
			err := config.Watch(ctx, path, func(cfg config.Config, err error) {
				if err != nil {
					return
				}
				sess.Post(func() { sess.Restyle(theme.FromConfig(cfg)) })
				log.Printf("texelform-demo: reloaded %s", path)
			})
			if err != nil {
				log.Printf("texelform-demo: watch %s: %v", path, err)
			}
		}
	}

	return devshell.RunForm(ctx, *formName, devshell.Options{
		Theme:   th,
		Args:    fs.Args(),
		Started: started,
	})
}
