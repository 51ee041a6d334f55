package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/pkg/client"
	"github.com/jwalitptl/doacao-api/pkg/logger"
	"github.com/jwalitptl/doacao-api/pkg/messaging/redis"
)

var errUsage = errors.New("unknown command, see -h")

type console struct {
	api *client.Client
	out io.Writer
}

func run(ctx context.Context, c *console, args []string) error {
	if len(args) == 0 {
		return c.dashboard(ctx)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "dashboard":
		return c.dashboard(ctx)
	case "doadores":
		return c.donors(ctx, rest)
	case "agendamentos":
		return c.appointments(ctx, rest)
	case "estoque":
		return c.stock(ctx, rest)
	case "relatorio":
		return c.export(ctx, rest)
	case "watch":
		return c.watch(ctx, rest)
	default:
		return errUsage
	}
}

func (c *console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

func (c *console) dashboard(ctx context.Context) error {
	d, err := c.api.Dashboard(ctx)
	if err != nil {
		return err
	}

	w := c.table()
	fmt.Fprintf(w, "Doadores cadastrados\t%d\n", d.TotalDonors)
	fmt.Fprintf(w, "Agendamentos hoje\t%d\n", d.AppointmentsToday)
	fmt.Fprintf(w, "Agendamentos no total\t%d\n", d.TotalAppointments)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "TIPO\tDOADORES")
	for _, r := range d.DonorsByBloodType {
		fmt.Fprintf(w, "%s\t%d\n", r.TipoSanguineo, r.Total)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "STATUS\tAGENDAMENTOS")
	for _, r := range d.AppointmentsByStatus {
		fmt.Fprintf(w, "%s\t%d\n", r.Status, r.Total)
	}
	return w.Flush()
}

func (c *console) donors(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if args[0] != "cadastrar" {
			return errUsage
		}
		return c.createDonor(ctx, args[1:])
	}

	donors, err := c.api.ListDonors(ctx)
	if err != nil {
		return err
	}
	w := c.table()
	fmt.Fprintln(w, "ID\tNOME\tCPF\tTIPO\tEMAIL\tTELEFONE\tAPTO")
	for _, d := range donors {
		apto := "não"
		if d.AptoDoar {
			apto = "sim"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.NomeCompleto, d.CPF, d.TipoSanguineo, d.Email, deref(d.Telefone), apto)
	}
	return w.Flush()
}

func (c *console) createDonor(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("doadores cadastrar", flag.ContinueOnError)
	fs.SetOutput(c.out)
	var req model.CreateDonorRequest
	fs.StringVar(&req.NomeCompleto, "nome", "", "nome completo")
	fs.StringVar(&req.CPF, "cpf", "", "CPF")
	fs.StringVar(&req.DataNascimento, "nascimento", "", "data de nascimento (AAAA-MM-DD)")
	fs.StringVar(&req.Sexo, "sexo", "", "M, F ou O")
	fs.StringVar(&req.TipoSanguineo, "tipo", "", "tipo sanguíneo")
	fs.StringVar(&req.Email, "email", "", "e-mail")
	telefone := fs.String("telefone", "", "telefone")
	cidade := fs.String("cidade", "", "cidade")
	estado := fs.String("estado", "", "estado")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.Telefone = optional(*telefone)
	req.Cidade = optional(*cidade)
	req.Estado = optional(*estado)

	id, err := c.api.CreateDonor(ctx, &req)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Doador cadastrado com sucesso! (id %d)\n", id)
	return nil
}

func (c *console) appointments(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "criar":
			return c.createAppointment(ctx, args[1:])
		case "status":
			return c.updateAppointment(ctx, args[1:])
		case "cancelar":
			return c.cancelAppointment(ctx, args[1:])
		default:
			return errUsage
		}
	}

	list, err := c.api.ListAppointments(ctx)
	if err != nil {
		return err
	}
	w := c.table()
	fmt.Fprintln(w, "ID\tDATA\tDOADOR\tTIPO\tSTATUS\tOBSERVAÇÕES")
	for _, a := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.DataAgendamento.Format("02/01/2006 15:04"), a.NomeCompleto, a.TipoSanguineo, a.Status, deref(a.Observacoes))
	}
	return w.Flush()
}

func (c *console) createAppointment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("agendamentos criar", flag.ContinueOnError)
	fs.SetOutput(c.out)
	donor := fs.Int64("doador", 0, "id do doador")
	at := fs.String("data", "", "data e hora (AAAA-MM-DDTHH:MM)")
	notes := fs.String("obs", "", "observações")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := c.api.CreateAppointment(ctx, &model.CreateAppointmentRequest{
		DonorID:         model.FlexID(*donor),
		DataAgendamento: *at,
		Observacoes:     optional(*notes),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Agendamento criado com sucesso! (id %d)\n", id)
	return nil
}

func (c *console) updateAppointment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("agendamentos status", flag.ContinueOnError)
	fs.SetOutput(c.out)
	id := fs.Int64("id", 0, "id do agendamento")
	status := fs.String("status", "", "Pendente, Confirmado, Realizado ou Cancelado")
	notes := fs.String("obs", "", "observações")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := &model.UpdateAppointmentRequest{Observacoes: optional(*notes)}
	if *status != "" {
		s := model.AppointmentStatus(*status)
		req.Status = &s
	}
	if err := c.api.UpdateAppointment(ctx, *id, req); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Agendamento atualizado com sucesso!")
	return nil
}

func (c *console) cancelAppointment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("agendamentos cancelar", flag.ContinueOnError)
	fs.SetOutput(c.out)
	id := fs.Int64("id", 0, "id do agendamento")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.api.CancelAppointment(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Agendamento cancelado com sucesso!")
	return nil
}

func (c *console) stock(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if args[0] != "definir" {
			return errUsage
		}
		fs := flag.NewFlagSet("estoque definir", flag.ContinueOnError)
		fs.SetOutput(c.out)
		bloodType := fs.String("tipo", "", "tipo sanguíneo")
		ml := fs.Int("ml", 0, "quantidade em ml")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := c.api.SetStock(ctx, *bloodType, *ml); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Estoque atualizado com sucesso!")
		return nil
	}

	entries, err := c.api.ListStock(ctx)
	if err != nil {
		return err
	}
	w := c.table()
	fmt.Fprintln(w, "TIPO\tQUANTIDADE (ML)\tNÍVEL\tATUALIZADO")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.TipoSanguineo, strconv.Itoa(e.QuantidadeML), e.Nivel, e.UltimaAtualizacao.Local().Format("02/01/2006 15:04"))
	}
	return w.Flush()
}

func (c *console) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("relatorio", flag.ContinueOnError)
	fs.SetOutput(c.out)
	path := fs.String("o", "relatorio.xlsx", "arquivo de saída")
	if err := fs.Parse(args); err != nil {
		return err
	}

	body, err := c.api.ExportReport(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *path, err)
	}
	fmt.Fprintf(c.out, "Relatório salvo em %s\n", *path)
	return nil
}

// watch prints change events published by the API until interrupted.
func (c *console) watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(c.out)
	url := fs.String("redis", os.Getenv("REDIS_URL"), "Redis URL")
	pattern := fs.String("pattern", "doacao.*", "channel pattern")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *url == "" {
		return errors.New("watch needs -redis or REDIS_URL")
	}

	log := logger.Setup(logger.Config{Level: "warn", Pretty: true, Output: os.Stderr})
	broker, err := redis.NewRedisBroker(redis.Config{URL: *url}, log)
	if err != nil {
		return err
	}
	defer broker.Close()

	msgs, err := broker.Subscribe(ctx, *pattern)
	if err != nil {
		return err
	}
	log.WithLevel(zerolog.NoLevel).Str("pattern", *pattern).Msg("watching change events")
	for msg := range msgs {
		fmt.Fprintln(c.out, string(msg))
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
