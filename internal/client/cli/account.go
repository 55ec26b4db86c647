package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fuelcost/internal/api/fuelcostv1"
)

func (a *App) account(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "create":
		x, err := a.accounts.CreateAccount(ctx, &fuelcostv1.CreateAccountRequest{Account: &fuelcostv1.Account{}})
		if err != nil {
			return err
		}
		return a.print(viewAccount(x))

	case "get":
		if err := need(args, 1, "name"); err != nil {
			return err
		}
		x, err := a.accounts.GetAccount(ctx, &fuelcostv1.GetAccountRequest{Name: args[0]})
		if err != nil {
			return err
		}
		return a.print(viewAccount(x))

	case "update":
		if err := need(args, 1, "name"); err != nil {
			return err
		}
		x, err := a.accounts.UpdateAccount(ctx, &fuelcostv1.UpdateAccountRequest{
			Account: &fuelcostv1.Account{Name: args[0], Etag: arg(args, 1)},
		})
		if err != nil {
			return err
		}
		return a.print(viewAccount(x))

	case "delete":
		if err := need(args, 1, "name"); err != nil {
			return err
		}
		_, err := a.accounts.DeleteAccount(ctx, &fuelcostv1.DeleteAccountRequest{Name: args[0], Etag: arg(args, 1)})
		return err

	case "list":
		size, err := pageSize(arg(args, 0))
		if err != nil {
			return err
		}
		all, err := fuelcostv1.ListAllAccounts(ctx, a.accounts, size)
		if err != nil {
			return err
		}
		views := make([]accountView, 0, len(all))
		for _, x := range all {
			views = append(views, viewAccount(x))
		}
		return a.print(views)

	default:
		return fmt.Errorf("%w: unknown account command %q", ErrUsage, cmd)
	}
}
