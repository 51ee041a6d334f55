// Command hemoctl is a terminal console for the blood-donation API.
//
//	hemoctl [-api URL] dashboard
//	hemoctl doadores [cadastrar -nome .. -cpf .. -nascimento .. -sexo .. -tipo .. -email ..]
//	hemoctl agendamentos [criar -doador ID -data .. | status -id ID -status .. | cancelar -id ID]
//	hemoctl estoque [definir -tipo A+ -ml 450]
//	hemoctl relatorio -o relatorio.xlsx
//	hemoctl watch -redis redis://localhost:6379 [-pattern doacao.*]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwalitptl/doacao-api/pkg/client"
)

const defaultAPI = "http://localhost:5000/api"

func main() {
	api := flag.String("api", envOr("DOACAO_API_URL", defaultAPI), "API base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: hemoctl [-api URL] dashboard|doadores|agendamentos|estoque|relatorio|watch ...")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(*api, client.WithTimeout(*timeout), client.WithRetry(2, 200*time.Millisecond))
	if err := run(ctx, &console{api: c, out: os.Stdout}, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "hemoctl: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
