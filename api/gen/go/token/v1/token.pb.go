// Hand-maintained bindings for api/proto/token/v1/token.proto.
// TODO: replace with protoc-generated code once codegen lands in the build.
package tokenv1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
)

// MintRequest asks the token service to mint new tokens for a recipient.
type MintRequest struct {
	Minter    string `protobuf:"bytes,1,opt,name=minter,proto3" json:"minter,omitempty"`
	Recipient string `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Amount    string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

type MintResponse struct {
	Balance     string `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
	TotalSupply string `protobuf:"bytes,2,opt,name=total_supply,json=totalSupply,proto3" json:"total_supply,omitempty"`
}

type BurnRequest struct {
	Owner  string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

type BurnResponse struct {
	Balance     string `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
	TotalSupply string `protobuf:"bytes,2,opt,name=total_supply,json=totalSupply,proto3" json:"total_supply,omitempty"`
}

type TransferRequest struct {
	Owner     string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Recipient string `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Amount    string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

type TransferResponse struct {
	OwnerBalance     string `protobuf:"bytes,1,opt,name=owner_balance,json=ownerBalance,proto3" json:"owner_balance,omitempty"`
	RecipientBalance string `protobuf:"bytes,2,opt,name=recipient_balance,json=recipientBalance,proto3" json:"recipient_balance,omitempty"`
}

type TransferFromRequest struct {
	Spender   string `protobuf:"bytes,1,opt,name=spender,proto3" json:"spender,omitempty"`
	Owner     string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Recipient string `protobuf:"bytes,3,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Amount    string `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

type TransferFromResponse struct {
	RemainingAllowance string `protobuf:"bytes,1,opt,name=remaining_allowance,json=remainingAllowance,proto3" json:"remaining_allowance,omitempty"`
}

type IncreaseAllowanceRequest struct {
	Owner   string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Spender string `protobuf:"bytes,2,opt,name=spender,proto3" json:"spender,omitempty"`
	Amount  string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

type IncreaseAllowanceResponse struct {
	Allowance string `protobuf:"bytes,1,opt,name=allowance,proto3" json:"allowance,omitempty"`
}

type DecreaseAllowanceRequest struct {
	Owner   string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Spender string `protobuf:"bytes,2,opt,name=spender,proto3" json:"spender,omitempty"`
	Amount  string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

type DecreaseAllowanceResponse struct {
	Allowance string `protobuf:"bytes,1,opt,name=allowance,proto3" json:"allowance,omitempty"`
}

type SendRequest struct {
	Owner  string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

type SendResponse struct {
	OwnerBalance string `protobuf:"bytes,1,opt,name=owner_balance,json=ownerBalance,proto3" json:"owner_balance,omitempty"`
}

type BalanceRequest struct {
	Account string `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
}

type BalanceResponse struct {
	Balance string `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

type AllowanceRequest struct {
	Owner   string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Spender string `protobuf:"bytes,2,opt,name=spender,proto3" json:"spender,omitempty"`
}

type AllowanceResponse struct {
	Allowance string `protobuf:"bytes,1,opt,name=allowance,proto3" json:"allowance,omitempty"`
}

type TokenInfoRequest struct{}

type TokenInfoResponse struct {
	Name        string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Symbol      string `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Decimals    uint32 `protobuf:"varint,3,opt,name=decimals,proto3" json:"decimals,omitempty"`
	TotalSupply string `protobuf:"bytes,4,opt,name=total_supply,json=totalSupply,proto3" json:"total_supply,omitempty"`
	Minter      string `protobuf:"bytes,5,opt,name=minter,proto3" json:"minter,omitempty"`
}

type AccountBalance struct {
	Account string `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Balance string `protobuf:"bytes,2,opt,name=balance,proto3" json:"balance,omitempty"`
}

type ListAccountsRequest struct {
	PageSize  int32  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
}

type ListAccountsResponse struct {
	Accounts      []*AccountBalance `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
	NextPageToken string            `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

// Legacy proto.Message methods. The grpc proto codec adapts these messages
// through protoadapt, deriving wire descriptors from the struct tags.

func (x *MintRequest) Reset()         { *x = MintRequest{} }
func (x *MintRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*MintRequest) ProtoMessage()    {}

func (x *MintResponse) Reset()         { *x = MintResponse{} }
func (x *MintResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*MintResponse) ProtoMessage()    {}

func (x *BurnRequest) Reset()         { *x = BurnRequest{} }
func (x *BurnRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*BurnRequest) ProtoMessage()    {}

func (x *BurnResponse) Reset()         { *x = BurnResponse{} }
func (x *BurnResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*BurnResponse) ProtoMessage()    {}

func (x *TransferRequest) Reset()         { *x = TransferRequest{} }
func (x *TransferRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*TransferRequest) ProtoMessage()    {}

func (x *TransferResponse) Reset()         { *x = TransferResponse{} }
func (x *TransferResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*TransferResponse) ProtoMessage()    {}

func (x *TransferFromRequest) Reset()         { *x = TransferFromRequest{} }
func (x *TransferFromRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*TransferFromRequest) ProtoMessage()    {}

func (x *TransferFromResponse) Reset()         { *x = TransferFromResponse{} }
func (x *TransferFromResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*TransferFromResponse) ProtoMessage()    {}

func (x *IncreaseAllowanceRequest) Reset()         { *x = IncreaseAllowanceRequest{} }
func (x *IncreaseAllowanceRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*IncreaseAllowanceRequest) ProtoMessage()    {}

func (x *IncreaseAllowanceResponse) Reset()         { *x = IncreaseAllowanceResponse{} }
func (x *IncreaseAllowanceResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*IncreaseAllowanceResponse) ProtoMessage()    {}

func (x *DecreaseAllowanceRequest) Reset()         { *x = DecreaseAllowanceRequest{} }
func (x *DecreaseAllowanceRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*DecreaseAllowanceRequest) ProtoMessage()    {}

func (x *DecreaseAllowanceResponse) Reset()         { *x = DecreaseAllowanceResponse{} }
func (x *DecreaseAllowanceResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*DecreaseAllowanceResponse) ProtoMessage()    {}

func (x *SendRequest) Reset()         { *x = SendRequest{} }
func (x *SendRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*SendRequest) ProtoMessage()    {}

func (x *SendResponse) Reset()         { *x = SendResponse{} }
func (x *SendResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*SendResponse) ProtoMessage()    {}

func (x *BalanceRequest) Reset()         { *x = BalanceRequest{} }
func (x *BalanceRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*BalanceRequest) ProtoMessage()    {}

func (x *BalanceResponse) Reset()         { *x = BalanceResponse{} }
func (x *BalanceResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*BalanceResponse) ProtoMessage()    {}

func (x *AllowanceRequest) Reset()         { *x = AllowanceRequest{} }
func (x *AllowanceRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*AllowanceRequest) ProtoMessage()    {}

func (x *AllowanceResponse) Reset()         { *x = AllowanceResponse{} }
func (x *AllowanceResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*AllowanceResponse) ProtoMessage()    {}

func (x *TokenInfoRequest) Reset()         { *x = TokenInfoRequest{} }
func (x *TokenInfoRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*TokenInfoRequest) ProtoMessage()    {}

func (x *TokenInfoResponse) Reset()         { *x = TokenInfoResponse{} }
func (x *TokenInfoResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*TokenInfoResponse) ProtoMessage()    {}

func (x *AccountBalance) Reset()         { *x = AccountBalance{} }
func (x *AccountBalance) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*AccountBalance) ProtoMessage()    {}

func (x *ListAccountsRequest) Reset()         { *x = ListAccountsRequest{} }
func (x *ListAccountsRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*ListAccountsRequest) ProtoMessage()    {}

func (x *ListAccountsResponse) Reset()         { *x = ListAccountsResponse{} }
func (x *ListAccountsResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*ListAccountsResponse) ProtoMessage()    {}

// Client API
type TokenServiceClient interface {
	Mint(ctx context.Context, in *MintRequest, opts ...grpc.CallOption) (*MintResponse, error)
	Burn(ctx context.Context, in *BurnRequest, opts ...grpc.CallOption) (*BurnResponse, error)
	Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error)
	TransferFrom(ctx context.Context, in *TransferFromRequest, opts ...grpc.CallOption) (*TransferFromResponse, error)
	IncreaseAllowance(ctx context.Context, in *IncreaseAllowanceRequest, opts ...grpc.CallOption) (*IncreaseAllowanceResponse, error)
	DecreaseAllowance(ctx context.Context, in *DecreaseAllowanceRequest, opts ...grpc.CallOption) (*DecreaseAllowanceResponse, error)
	Send(ctx context.Context, in *SendRequest, opts ...grpc.CallOption) (*SendResponse, error)
	Balance(ctx context.Context, in *BalanceRequest, opts ...grpc.CallOption) (*BalanceResponse, error)
	Allowance(ctx context.Context, in *AllowanceRequest, opts ...grpc.CallOption) (*AllowanceResponse, error)
	TokenInfo(ctx context.Context, in *TokenInfoRequest, opts ...grpc.CallOption) (*TokenInfoResponse, error)
	ListAccounts(ctx context.Context, in *ListAccountsRequest, opts ...grpc.CallOption) (*ListAccountsResponse, error)
}

type tokenServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTokenServiceClient(cc grpc.ClientConnInterface) TokenServiceClient {
	return &tokenServiceClient{cc}
}

func (c *tokenServiceClient) Mint(ctx context.Context, in *MintRequest, opts ...grpc.CallOption) (*MintResponse, error) {
	out := new(MintResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/Mint", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) Burn(ctx context.Context, in *BurnRequest, opts ...grpc.CallOption) (*BurnResponse, error) {
	out := new(BurnResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/Burn", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*TransferResponse, error) {
	out := new(TransferResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/Transfer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) TransferFrom(ctx context.Context, in *TransferFromRequest, opts ...grpc.CallOption) (*TransferFromResponse, error) {
	out := new(TransferFromResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/TransferFrom", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) IncreaseAllowance(ctx context.Context, in *IncreaseAllowanceRequest, opts ...grpc.CallOption) (*IncreaseAllowanceResponse, error) {
	out := new(IncreaseAllowanceResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/IncreaseAllowance", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) DecreaseAllowance(ctx context.Context, in *DecreaseAllowanceRequest, opts ...grpc.CallOption) (*DecreaseAllowanceResponse, error) {
	out := new(DecreaseAllowanceResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/DecreaseAllowance", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) Send(ctx context.Context, in *SendRequest, opts ...grpc.CallOption) (*SendResponse, error) {
	out := new(SendResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/Send", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) Balance(ctx context.Context, in *BalanceRequest, opts ...grpc.CallOption) (*BalanceResponse, error) {
	out := new(BalanceResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/Balance", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) Allowance(ctx context.Context, in *AllowanceRequest, opts ...grpc.CallOption) (*AllowanceResponse, error) {
	out := new(AllowanceResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/Allowance", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) TokenInfo(ctx context.Context, in *TokenInfoRequest, opts ...grpc.CallOption) (*TokenInfoResponse, error) {
	out := new(TokenInfoResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/TokenInfo", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokenServiceClient) ListAccounts(ctx context.Context, in *ListAccountsRequest, opts ...grpc.CallOption) (*ListAccountsResponse, error) {
	out := new(ListAccountsResponse)
	err := c.cc.Invoke(ctx, "/token.v1.TokenService/ListAccounts", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Server API
type TokenServiceServer interface {
	Mint(context.Context, *MintRequest) (*MintResponse, error)
	Burn(context.Context, *BurnRequest) (*BurnResponse, error)
	Transfer(context.Context, *TransferRequest) (*TransferResponse, error)
	TransferFrom(context.Context, *TransferFromRequest) (*TransferFromResponse, error)
	IncreaseAllowance(context.Context, *IncreaseAllowanceRequest) (*IncreaseAllowanceResponse, error)
	DecreaseAllowance(context.Context, *DecreaseAllowanceRequest) (*DecreaseAllowanceResponse, error)
	Send(context.Context, *SendRequest) (*SendResponse, error)
	Balance(context.Context, *BalanceRequest) (*BalanceResponse, error)
	Allowance(context.Context, *AllowanceRequest) (*AllowanceResponse, error)
	TokenInfo(context.Context, *TokenInfoRequest) (*TokenInfoResponse, error)
	ListAccounts(context.Context, *ListAccountsRequest) (*ListAccountsResponse, error)
}

type UnimplementedTokenServiceServer struct{}

func (*UnimplementedTokenServiceServer) Mint(context.Context, *MintRequest) (*MintResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Mint not implemented")
}
func (*UnimplementedTokenServiceServer) Burn(context.Context, *BurnRequest) (*BurnResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Burn not implemented")
}
func (*UnimplementedTokenServiceServer) Transfer(context.Context, *TransferRequest) (*TransferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Transfer not implemented")
}
func (*UnimplementedTokenServiceServer) TransferFrom(context.Context, *TransferFromRequest) (*TransferFromResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransferFrom not implemented")
}
func (*UnimplementedTokenServiceServer) IncreaseAllowance(context.Context, *IncreaseAllowanceRequest) (*IncreaseAllowanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IncreaseAllowance not implemented")
}
func (*UnimplementedTokenServiceServer) DecreaseAllowance(context.Context, *DecreaseAllowanceRequest) (*DecreaseAllowanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecreaseAllowance not implemented")
}
func (*UnimplementedTokenServiceServer) Send(context.Context, *SendRequest) (*SendResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Send not implemented")
}
func (*UnimplementedTokenServiceServer) Balance(context.Context, *BalanceRequest) (*BalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Balance not implemented")
}
func (*UnimplementedTokenServiceServer) Allowance(context.Context, *AllowanceRequest) (*AllowanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Allowance not implemented")
}
func (*UnimplementedTokenServiceServer) TokenInfo(context.Context, *TokenInfoRequest) (*TokenInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TokenInfo not implemented")
}
func (*UnimplementedTokenServiceServer) ListAccounts(context.Context, *ListAccountsRequest) (*ListAccountsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAccounts not implemented")
}

func RegisterTokenServiceServer(s *grpc.Server, srv TokenServiceServer) {
	s.RegisterService(&_TokenService_serviceDesc, srv)
}

func _TokenService_Mint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MintRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).Mint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/Mint",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).Mint(ctx, req.(*MintRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_Burn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).Burn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/Burn",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).Burn(ctx, req.(*BurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_Transfer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).Transfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/Transfer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).Transfer(ctx, req.(*TransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_TransferFrom_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferFromRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).TransferFrom(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/TransferFrom",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).TransferFrom(ctx, req.(*TransferFromRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_IncreaseAllowance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IncreaseAllowanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).IncreaseAllowance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/IncreaseAllowance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).IncreaseAllowance(ctx, req.(*IncreaseAllowanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_DecreaseAllowance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecreaseAllowanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).DecreaseAllowance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/DecreaseAllowance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).DecreaseAllowance(ctx, req.(*DecreaseAllowanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_Send_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).Send(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/Send",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).Send(ctx, req.(*SendRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_Balance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).Balance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/Balance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).Balance(ctx, req.(*BalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_Allowance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AllowanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).Allowance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/Allowance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).Allowance(ctx, req.(*AllowanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_TokenInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TokenInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).TokenInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/TokenInfo",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).TokenInfo(ctx, req.(*TokenInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TokenService_ListAccounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAccountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokenServiceServer).ListAccounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/token.v1.TokenService/ListAccounts",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokenServiceServer).ListAccounts(ctx, req.(*ListAccountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _TokenService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "token.v1.TokenService",
	HandlerType: (*TokenServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Mint", Handler: _TokenService_Mint_Handler},
		{MethodName: "Burn", Handler: _TokenService_Burn_Handler},
		{MethodName: "Transfer", Handler: _TokenService_Transfer_Handler},
		{MethodName: "TransferFrom", Handler: _TokenService_TransferFrom_Handler},
		{MethodName: "IncreaseAllowance", Handler: _TokenService_IncreaseAllowance_Handler},
		{MethodName: "DecreaseAllowance", Handler: _TokenService_DecreaseAllowance_Handler},
		{MethodName: "Send", Handler: _TokenService_Send_Handler},
		{MethodName: "Balance", Handler: _TokenService_Balance_Handler},
		{MethodName: "Allowance", Handler: _TokenService_Allowance_Handler},
		{MethodName: "TokenInfo", Handler: _TokenService_TokenInfo_Handler},
		{MethodName: "ListAccounts", Handler: _TokenService_ListAccounts_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "token/v1/token.proto",
}
