package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jedit-io/jedit/server"

	"github.com/scott-cotton/cli"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}

	spec := &server.Spec{}
	if cfg.Config != "" {
		spec.Config, err = server.LoadConfig(cfg.Config)
		if err != nil {
			return err
		}
		if err := spec.Config.Validate(); err != nil {
			return err
		}
	}
	srv := server.New(spec)

	if cfg.Stdio {
		return srv.ServeConn(context.Background(), "stdio",
			&stdioReadWriteCloser{read: os.Stdin, write: os.Stdout})
	}

	addr := cfg.Addr
	if addr == "" {
		addr = srv.Spec.Config.Addr
	}
	if err := srv.StartTCP(addr); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "listening on %s\n", srv.TCPAddr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()
	return srv.StopTCP()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
