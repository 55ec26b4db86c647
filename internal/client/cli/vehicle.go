package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fuelcost/internal/api/fuelcostv1"
)

func (a *App) vehicle(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "create":
		if err := need(args, 1, "parent"); err != nil {
			return err
		}
		x, err := a.vehicles.CreateVehicle(ctx, &fuelcostv1.CreateVehicleRequest{
			Parent:  args[0],
			Vehicle: &fuelcostv1.Vehicle{DisplayName: arg(args, 1)},
		})
		if err != nil {
			return err
		}
		return a.print(viewVehicle(x))

	case "get":
		if err := need(args, 1, "name"); err != nil {
			return err
		}
		x, err := a.vehicles.GetVehicle(ctx, &fuelcostv1.GetVehicleRequest{Name: args[0]})
		if err != nil {
			return err
		}
		return a.print(viewVehicle(x))

	// update replaces the display name; omitting it clears the value.
	case "update":
		if err := need(args, 2, "name and etag"); err != nil {
			return err
		}
		x, err := a.vehicles.UpdateVehicle(ctx, &fuelcostv1.UpdateVehicleRequest{
			Vehicle: &fuelcostv1.Vehicle{Name: args[0], Etag: args[1], DisplayName: arg(args, 2)},
		})
		if err != nil {
			return err
		}
		return a.print(viewVehicle(x))

	case "delete":
		if err := need(args, 1, "name"); err != nil {
			return err
		}
		_, err := a.vehicles.DeleteVehicle(ctx, &fuelcostv1.DeleteVehicleRequest{Name: args[0], Etag: arg(args, 1)})
		return err

	case "list":
		if err := need(args, 1, "parent"); err != nil {
			return err
		}
		size, err := pageSize(arg(args, 1))
		if err != nil {
			return err
		}
		all, err := fuelcostv1.ListAllVehicles(ctx, a.vehicles, args[0], size)
		if err != nil {
			return err
		}
		views := make([]vehicleView, 0, len(all))
		for _, x := range all {
			views = append(views, viewVehicle(x))
		}
		return a.print(views)

	default:
		return fmt.Errorf("%w: unknown vehicle command %q", ErrUsage, cmd)
	}
}
