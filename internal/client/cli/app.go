// Package cli implements the fuelcost command-line client. Each invocation
// runs one command against the server and prints the result as JSON.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dmitrijs2005/fuelcost/internal/api/fuelcostv1"
	json "github.com/json-iterator/go"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var ErrUsage = errors.New("usage")

const Usage = `usage: fuelcost [-a addr] [-k token] [-w seconds] [-c file] <command>

commands:
  account create
  account get <name>
  account update <name> [etag]
  account delete <name> [etag]
  account list [page_size]
  vehicle create <parent> [display_name]
  vehicle get <name>
  vehicle update <name> <etag> [display_name]
  vehicle delete <name> [etag]
  vehicle list <parent> [page_size]`

type App struct {
	accounts fuelcostv1.AccountServiceClient
	vehicles fuelcostv1.VehicleServiceClient
	timeout  time.Duration
	out      io.Writer
}

func NewApp(accounts fuelcostv1.AccountServiceClient, vehicles fuelcostv1.VehicleServiceClient, timeout time.Duration, out io.Writer) *App {
	return &App{accounts: accounts, vehicles: vehicles, timeout: timeout, out: out}
}

// Run executes the command named by args.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	switch args[0] {
	case "account":
		return a.account(ctx, args[1], args[2:])
	case "vehicle":
		return a.vehicle(ctx, args[1], args[2:])
	default:
		return fmt.Errorf("%w: unknown resource %q", ErrUsage, args[0])
	}
}

type accountView struct {
	Name       string `json:"name"`
	Etag       string `json:"etag"`
	CreateTime string `json:"create_time,omitempty"`
	UpdateTime string `json:"update_time,omitempty"`
}

type vehicleView struct {
	Name        string `json:"name"`
	Etag        string `json:"etag"`
	CreateTime  string `json:"create_time,omitempty"`
	UpdateTime  string `json:"update_time,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().UTC().Format(time.RFC3339Nano)
}

func viewAccount(x *fuelcostv1.Account) accountView {
	return accountView{
		Name:       x.Name,
		Etag:       x.Etag,
		CreateTime: formatTime(x.CreateTime),
		UpdateTime: formatTime(x.UpdateTime),
	}
}

func viewVehicle(x *fuelcostv1.Vehicle) vehicleView {
	return vehicleView{
		Name:        x.Name,
		Etag:        x.Etag,
		CreateTime:  formatTime(x.CreateTime),
		UpdateTime:  formatTime(x.UpdateTime),
		DisplayName: x.DisplayName,
	}
}

func (a *App) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

// arg returns args[i], or "" when absent.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func pageSize(s string) (int32, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: page_size must be an integer: %q", ErrUsage, s)
	}
	return int32(n), nil
}

func need(args []string, n int, what string) error {
	if len(args) < n {
		return fmt.Errorf("%w: missing %s", ErrUsage, what)
	}
	return nil
}
