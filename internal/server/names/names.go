// Package names provides the typed resource names of the API:
// accounts/{account} and accounts/{account}/vehicles/{vehicle}.
package names

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/dmitrijs2005/fuelcost/internal/resourcename"
)

var (
	accountTemplate = resourcename.MustCompile("accounts/{account}")
	vehicleTemplate = resourcename.MustCompile("accounts/{account}/vehicles/{vehicle}")
)

// AccountName identifies an account.
type AccountName struct {
	AccountID int64
}

// ParseAccountName parses s, reporting failures against field.
func ParseAccountName(field, s string) (AccountName, error) {
	m, err := bind(accountTemplate, field, s)
	if err != nil {
		return AccountName{}, err
	}
	id, err := parseID(field, s, m["account"])
	if err != nil {
		return AccountName{}, err
	}
	return AccountName{AccountID: id}, nil
}

func (n AccountName) String() string {
	return format(accountTemplate, "account", id(n.AccountID))
}

func (n AccountName) Compare(o AccountName) int {
	return cmp.Compare(n.AccountID, o.AccountID)
}

// Vehicle returns the name of vehicle vehicleID under this account.
func (n AccountName) Vehicle(vehicleID int64) VehicleName {
	return VehicleName{AccountID: n.AccountID, VehicleID: vehicleID}
}

// VehicleName identifies a vehicle within its account.
type VehicleName struct {
	AccountID int64
	VehicleID int64
}

// ParseVehicleName parses s, reporting failures against field.
func ParseVehicleName(field, s string) (VehicleName, error) {
	m, err := bind(vehicleTemplate, field, s)
	if err != nil {
		return VehicleName{}, err
	}
	accountID, err := parseID(field, s, m["account"])
	if err != nil {
		return VehicleName{}, err
	}
	vehicleID, err := parseID(field, s, m["vehicle"])
	if err != nil {
		return VehicleName{}, err
	}
	return VehicleName{AccountID: accountID, VehicleID: vehicleID}, nil
}

func (n VehicleName) String() string {
	return format(vehicleTemplate, "account", id(n.AccountID), "vehicle", id(n.VehicleID))
}

func (n VehicleName) Parent() AccountName {
	return AccountName{AccountID: n.AccountID}
}

// Compare orders by account id, then vehicle id.
func (n VehicleName) Compare(o VehicleName) int {
	if c := cmp.Compare(n.AccountID, o.AccountID); c != 0 {
		return c
	}
	return cmp.Compare(n.VehicleID, o.VehicleID)
}

func bind(t *resourcename.Template, field, s string) (map[string]string, error) {
	if s == "" {
		return nil, common.RequiredArgument(field)
	}
	m, err := t.Parse(s)
	if err != nil {
		return nil, invalidField(field, s)
	}
	return m, nil
}

func parseID(field, name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, invalidField(field, name)
	}
	return v, nil
}

func invalidField(field, value string) error {
	return fmt.Errorf("%w: invalid field %s: %s", common.ErrInvalidArgument, field, value)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// format cannot fail for integer bindings.
func format(t *resourcename.Template, kv ...string) string {
	s, err := t.FormatPairs(kv...)
	if err != nil {
		panic(err)
	}
	return s
}
