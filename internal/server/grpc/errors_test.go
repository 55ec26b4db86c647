package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/fuelcost/internal/api/fuelcostv1"
	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/dmitrijs2005/fuelcost/internal/server/models"
	"github.com/dmitrijs2005/fuelcost/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.RequiredArgument("account"), codes.InvalidArgument},
		{common.InvalidArgument("display_name", "too long"), codes.InvalidArgument},
		{common.NotFound("accounts/1"), codes.NotFound},
		{common.PreconditionFailed("accounts/1"), codes.Aborted},
		{common.ErrUnauthenticated, codes.Unauthenticated},
		{fmt.Errorf("wrap: %w", common.ErrTokenExpired), codes.Unauthenticated},
		{common.ErrInvalidToken, codes.Unauthenticated},
		{fmt.Errorf("db error: %w", context.Canceled), codes.Canceled},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codeOf(tt.err), tt.err.Error())
	}
}

type recordingLogger struct {
	nopLogger
	errors []string
}

func (l *recordingLogger) Error(_ context.Context, msg string, _ ...any) {
	l.errors = append(l.errors, msg)
}

func TestToStatus_HidesInternalDetails(t *testing.T) {
	l := &recordingLogger{}
	s := &GRPCServer{logger: l}

	err := s.toStatus(context.Background(), errors.New("db error: connection refused"))
	st := status.Convert(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
	assert.Len(t, l.errors, 1)

	err = s.toStatus(context.Background(), common.PreconditionFailed("accounts/1"))
	st = status.Convert(err)
	assert.Equal(t, codes.Aborted, st.Code())
	assert.Equal(t, "accounts/1: etag not matching", st.Message())
	assert.Len(t, l.errors, 1)
}

type fakeAccounts struct {
	err  error
	page *services.AccountPage
}

func (f *fakeAccounts) Create(context.Context) (*models.Account, error) { return nil, f.err }
func (f *fakeAccounts) Get(context.Context, string) (*models.Account, error) {
	return nil, f.err
}
func (f *fakeAccounts) Update(context.Context, string, string) (*models.Account, error) {
	return nil, f.err
}
func (f *fakeAccounts) Delete(context.Context, string, string) error { return f.err }
func (f *fakeAccounts) List(context.Context, int32, string) (*services.AccountPage, error) {
	return f.page, f.err
}

func TestHandlers_MapServiceErrors(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccounts{err: errors.New("db error: broken pipe")}
	s := &GRPCServer{logger: nopLogger{}, accounts: fake}

	_, err := s.GetAccount(ctx, &fuelcostv1.GetAccountRequest{Name: "accounts/1"})
	assert.Equal(t, codes.Internal, status.Code(err))

	fake.err = common.NotFound("accounts/1")
	_, err = s.DeleteAccount(ctx, &fuelcostv1.DeleteAccountRequest{Name: "accounts/1"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	fake.err = nil
	fake.page = &services.AccountPage{Accounts: []*models.Account{{ID: 7, Version: 3}}, NextPageToken: "t"}
	resp, err := s.ListAccounts(ctx, &fuelcostv1.ListAccountsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Accounts, 1)
	assert.Equal(t, "accounts/7", resp.Accounts[0].Name)
	assert.Equal(t, `W/"3"`, resp.Accounts[0].Etag)
	assert.Equal(t, "t", resp.NextPageToken)
}

func TestVehicleToWire(t *testing.T) {
	dn := "Saab"
	v := &models.Vehicle{AccountID: 2, ID: 5, Version: 4, DisplayName: &dn}
	w := vehicleToWire(v)
	assert.Equal(t, "accounts/2/vehicles/5", w.Name)
	assert.Equal(t, `W/"4"`, w.Etag)
	assert.Equal(t, "Saab", w.DisplayName)

	v.DisplayName = nil
	assert.Empty(t, vehicleToWire(v).DisplayName)
}
