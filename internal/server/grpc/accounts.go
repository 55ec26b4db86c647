package grpc

import (
	"context"

	"github.com/dmitrijs2005/fuelcost/internal/api/fuelcostv1"
	"github.com/dmitrijs2005/fuelcost/internal/common"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) CreateAccount(ctx context.Context, req *fuelcostv1.CreateAccountRequest) (*fuelcostv1.Account, error) {
	if req.Account == nil {
		return nil, s.toStatus(ctx, common.RequiredArgument("account"))
	}

	account, err := s.accounts.Create(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Account created", "name", account.Name().String())
	return accountToWire(account), nil
}

func (s *GRPCServer) GetAccount(ctx context.Context, req *fuelcostv1.GetAccountRequest) (*fuelcostv1.Account, error) {
	account, err := s.accounts.Get(ctx, req.Name)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return accountToWire(account), nil
}

func (s *GRPCServer) UpdateAccount(ctx context.Context, req *fuelcostv1.UpdateAccountRequest) (*fuelcostv1.Account, error) {
	if req.Account == nil {
		return nil, s.toStatus(ctx, common.RequiredArgument("account"))
	}

	account, err := s.accounts.Update(ctx, req.Account.GetName(), req.Account.GetEtag())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return accountToWire(account), nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *fuelcostv1.DeleteAccountRequest) (*emptypb.Empty, error) {
	if err := s.accounts.Delete(ctx, req.Name, req.Etag); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Account deleted", "name", req.Name)
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListAccounts(ctx context.Context, req *fuelcostv1.ListAccountsRequest) (*fuelcostv1.ListAccountsResponse, error) {
	page, err := s.accounts.List(ctx, req.PageSize, req.PageToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &fuelcostv1.ListAccountsResponse{
		Accounts:      make([]*fuelcostv1.Account, 0, len(page.Accounts)),
		NextPageToken: page.NextPageToken,
	}
	for _, a := range page.Accounts {
		resp.Accounts = append(resp.Accounts, accountToWire(a))
	}
	return resp, nil
}
