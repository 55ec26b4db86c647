package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/fuelcost/internal/client/cli"
	"github.com/dmitrijs2005/fuelcost/internal/client/client"
	"github.com/dmitrijs2005/fuelcost/internal/client/config"
	"github.com/dmitrijs2005/fuelcost/internal/flagx"
)

func main() {
	args := os.Args[1:]

	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	c, err := client.NewGRPCClient(cfg.ServerEndpointAddr, cfg.AccessToken)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer c.Close()

	app := cli.NewApp(c.Accounts, c.Vehicles, cfg.CallTimeout, os.Stdout)
	command := flagx.Positional(args, []string{"-a", "-k", "-w", "-c", "-config", "--config"})

	if err := app.Run(context.Background(), command); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n\n%s\n", err, cli.Usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, client.DescribeError(err))
		os.Exit(1)
	}
}
