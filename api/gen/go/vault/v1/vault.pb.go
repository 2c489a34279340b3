// Hand-maintained bindings for api/proto/vault/v1/vault.proto.
// TODO: replace with protoc-generated code once codegen lands in the build.
package vaultv1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// Coin pairs a denomination with a decimal string amount.
type Coin struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

// VaultInfo describes the vault configuration and escrow total.
type VaultInfo struct {
	Owner         string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	TokenContract string `protobuf:"bytes,2,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	NativeDenom   string `protobuf:"bytes,3,opt,name=native_denom,json=nativeDenom,proto3" json:"native_denom,omitempty"`
	EscrowTotal   string `protobuf:"bytes,4,opt,name=escrow_total,json=escrowTotal,proto3" json:"escrow_total,omitempty"`
}

// LedgerEntry records one escrow movement.
type LedgerEntry struct {
	Id        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Kind      string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Account   string                 `protobuf:"bytes,3,opt,name=account,proto3" json:"account,omitempty"`
	Amount    string                 `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Denom     string                 `protobuf:"bytes,5,opt,name=denom,proto3" json:"denom,omitempty"`
	CreatedAt *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

type BindTokenContractRequest struct {
	TokenContract string `protobuf:"bytes,1,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	OwnerGrant    string `protobuf:"bytes,2,opt,name=owner_grant,json=ownerGrant,proto3" json:"owner_grant,omitempty"`
}

type BindTokenContractResponse struct {
	Info *VaultInfo `protobuf:"bytes,1,opt,name=info,proto3" json:"info,omitempty"`
}

type DepositRequest struct {
	Sender string  `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Funds  []*Coin `protobuf:"bytes,2,rep,name=funds,proto3" json:"funds,omitempty"`
}

type DepositResponse struct {
	Entry  *LedgerEntry `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	Minted string       `protobuf:"bytes,2,opt,name=minted,proto3" json:"minted,omitempty"`
}

type WithdrawRequest struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

type WithdrawResponse struct {
	Entry    *LedgerEntry `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	Released *Coin        `protobuf:"bytes,2,opt,name=released,proto3" json:"released,omitempty"`
}

type ReceiveRequest struct {
	TokenContract string `protobuf:"bytes,1,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Sender        string `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	Amount        string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Signature     string `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
	KeyId         string `protobuf:"bytes,5,opt,name=key_id,json=keyId,proto3" json:"key_id,omitempty"`
}

type ReceiveResponse struct {
	Entry    *LedgerEntry `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	Released *Coin        `protobuf:"bytes,2,opt,name=released,proto3" json:"released,omitempty"`
}

type InfoRequest struct{}

type InfoResponse struct {
	Info *VaultInfo `protobuf:"bytes,1,opt,name=info,proto3" json:"info,omitempty"`
}

type ListLedgerEntriesRequest struct {
	PageSize  int32  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	Filter    string `protobuf:"bytes,3,opt,name=filter,proto3" json:"filter,omitempty"`
}

type ListLedgerEntriesResponse struct {
	Entries       []*LedgerEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	NextPageToken string         `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
}

// Legacy proto.Message methods. The grpc proto codec adapts these messages
// through protoadapt, deriving wire descriptors from the struct tags.

func (x *Coin) Reset()         { *x = Coin{} }
func (x *Coin) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*Coin) ProtoMessage()    {}

func (x *VaultInfo) Reset()         { *x = VaultInfo{} }
func (x *VaultInfo) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*VaultInfo) ProtoMessage()    {}

func (x *LedgerEntry) Reset()         { *x = LedgerEntry{} }
func (x *LedgerEntry) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*LedgerEntry) ProtoMessage()    {}

func (x *BindTokenContractRequest) Reset()         { *x = BindTokenContractRequest{} }
func (x *BindTokenContractRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*BindTokenContractRequest) ProtoMessage()    {}

func (x *BindTokenContractResponse) Reset()         { *x = BindTokenContractResponse{} }
func (x *BindTokenContractResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*BindTokenContractResponse) ProtoMessage()    {}

func (x *DepositRequest) Reset()         { *x = DepositRequest{} }
func (x *DepositRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*DepositRequest) ProtoMessage()    {}

func (x *DepositResponse) Reset()         { *x = DepositResponse{} }
func (x *DepositResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*DepositResponse) ProtoMessage()    {}

func (x *WithdrawRequest) Reset()         { *x = WithdrawRequest{} }
func (x *WithdrawRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*WithdrawRequest) ProtoMessage()    {}

func (x *WithdrawResponse) Reset()         { *x = WithdrawResponse{} }
func (x *WithdrawResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*WithdrawResponse) ProtoMessage()    {}

func (x *ReceiveRequest) Reset()         { *x = ReceiveRequest{} }
func (x *ReceiveRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*ReceiveRequest) ProtoMessage()    {}

func (x *ReceiveResponse) Reset()         { *x = ReceiveResponse{} }
func (x *ReceiveResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*ReceiveResponse) ProtoMessage()    {}

func (x *InfoRequest) Reset()         { *x = InfoRequest{} }
func (x *InfoRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*InfoRequest) ProtoMessage()    {}

func (x *InfoResponse) Reset()         { *x = InfoResponse{} }
func (x *InfoResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*InfoResponse) ProtoMessage()    {}

func (x *ListLedgerEntriesRequest) Reset()         { *x = ListLedgerEntriesRequest{} }
func (x *ListLedgerEntriesRequest) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*ListLedgerEntriesRequest) ProtoMessage()    {}

func (x *ListLedgerEntriesResponse) Reset()         { *x = ListLedgerEntriesResponse{} }
func (x *ListLedgerEntriesResponse) String() string { return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(x)) }
func (*ListLedgerEntriesResponse) ProtoMessage()    {}

// Client API
type VaultServiceClient interface {
	BindTokenContract(ctx context.Context, in *BindTokenContractRequest, opts ...grpc.CallOption) (*BindTokenContractResponse, error)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	Receive(ctx context.Context, in *ReceiveRequest, opts ...grpc.CallOption) (*ReceiveResponse, error)
	Info(ctx context.Context, in *InfoRequest, opts ...grpc.CallOption) (*InfoResponse, error)
	ListLedgerEntries(ctx context.Context, in *ListLedgerEntriesRequest, opts ...grpc.CallOption) (*ListLedgerEntriesResponse, error)
}

type vaultServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVaultServiceClient(cc grpc.ClientConnInterface) VaultServiceClient {
	return &vaultServiceClient{cc}
}

func (c *vaultServiceClient) BindTokenContract(ctx context.Context, in *BindTokenContractRequest, opts ...grpc.CallOption) (*BindTokenContractResponse, error) {
	out := new(BindTokenContractResponse)
	err := c.cc.Invoke(ctx, "/vault.v1.VaultService/BindTokenContract", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	out := new(DepositResponse)
	err := c.cc.Invoke(ctx, "/vault.v1.VaultService/Deposit", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	out := new(WithdrawResponse)
	err := c.cc.Invoke(ctx, "/vault.v1.VaultService/Withdraw", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Receive(ctx context.Context, in *ReceiveRequest, opts ...grpc.CallOption) (*ReceiveResponse, error) {
	out := new(ReceiveResponse)
	err := c.cc.Invoke(ctx, "/vault.v1.VaultService/Receive", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Info(ctx context.Context, in *InfoRequest, opts ...grpc.CallOption) (*InfoResponse, error) {
	out := new(InfoResponse)
	err := c.cc.Invoke(ctx, "/vault.v1.VaultService/Info", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) ListLedgerEntries(ctx context.Context, in *ListLedgerEntriesRequest, opts ...grpc.CallOption) (*ListLedgerEntriesResponse, error) {
	out := new(ListLedgerEntriesResponse)
	err := c.cc.Invoke(ctx, "/vault.v1.VaultService/ListLedgerEntries", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Server API
type VaultServiceServer interface {
	BindTokenContract(context.Context, *BindTokenContractRequest) (*BindTokenContractResponse, error)
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	Receive(context.Context, *ReceiveRequest) (*ReceiveResponse, error)
	Info(context.Context, *InfoRequest) (*InfoResponse, error)
	ListLedgerEntries(context.Context, *ListLedgerEntriesRequest) (*ListLedgerEntriesResponse, error)
}

type UnimplementedVaultServiceServer struct{}

func (*UnimplementedVaultServiceServer) BindTokenContract(context.Context, *BindTokenContractRequest) (*BindTokenContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BindTokenContract not implemented")
}
func (*UnimplementedVaultServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}
func (*UnimplementedVaultServiceServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (*UnimplementedVaultServiceServer) Receive(context.Context, *ReceiveRequest) (*ReceiveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Receive not implemented")
}
func (*UnimplementedVaultServiceServer) Info(context.Context, *InfoRequest) (*InfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Info not implemented")
}
func (*UnimplementedVaultServiceServer) ListLedgerEntries(context.Context, *ListLedgerEntriesRequest) (*ListLedgerEntriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLedgerEntries not implemented")
}

func RegisterVaultServiceServer(s *grpc.Server, srv VaultServiceServer) {
	s.RegisterService(&_VaultService_serviceDesc, srv)
}

func _VaultService_BindTokenContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BindTokenContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).BindTokenContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vault.v1.VaultService/BindTokenContract",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).BindTokenContract(ctx, req.(*BindTokenContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vault.v1.VaultService/Deposit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vault.v1.VaultService/Withdraw",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Receive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReceiveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Receive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vault.v1.VaultService/Receive",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Receive(ctx, req.(*ReceiveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Info_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Info(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vault.v1.VaultService/Info",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Info(ctx, req.(*InfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_ListLedgerEntries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLedgerEntriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).ListLedgerEntries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/vault.v1.VaultService/ListLedgerEntries",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).ListLedgerEntries(ctx, req.(*ListLedgerEntriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _VaultService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "vault.v1.VaultService",
	HandlerType: (*VaultServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "BindTokenContract", Handler: _VaultService_BindTokenContract_Handler},
		{MethodName: "Deposit", Handler: _VaultService_Deposit_Handler},
		{MethodName: "Withdraw", Handler: _VaultService_Withdraw_Handler},
		{MethodName: "Receive", Handler: _VaultService_Receive_Handler},
		{MethodName: "Info", Handler: _VaultService_Info_Handler},
		{MethodName: "ListLedgerEntries", Handler: _VaultService_ListLedgerEntries_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vault/v1/vault.proto",
}
