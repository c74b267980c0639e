// Client and server bindings for the services in proto/tekhsi.proto.

package pb

import (
	context "context"

	grpc "google.golang.org/grpc"
)

// ConnectClient is the client API for the Connect service.
type ConnectClient interface {
	Connect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectReply, error)
	Disconnect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectReply, error)
	KeepAlive(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectReply, error)
	RequestAvailableNames(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*AvailableNamesReply, error)
	RequestNewSequence(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectReply, error)
}

type connectClient struct {
	cc grpc.ClientConnInterface
}

func NewConnectClient(cc grpc.ClientConnInterface) ConnectClient {
	return &connectClient{cc}
}

func (c *connectClient) Connect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectReply, error) {
	out := new(ConnectReply)
	err := c.cc.Invoke(ctx, "/tekhsi.Connect/Connect", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *connectClient) Disconnect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectReply, error) {
	out := new(ConnectReply)
	err := c.cc.Invoke(ctx, "/tekhsi.Connect/Disconnect", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *connectClient) KeepAlive(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectReply, error) {
	out := new(ConnectReply)
	err := c.cc.Invoke(ctx, "/tekhsi.Connect/KeepAlive", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *connectClient) RequestAvailableNames(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*AvailableNamesReply, error) {
	out := new(AvailableNamesReply)
	err := c.cc.Invoke(ctx, "/tekhsi.Connect/RequestAvailableNames", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *connectClient) RequestNewSequence(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (*ConnectReply, error) {
	out := new(ConnectReply)
	err := c.cc.Invoke(ctx, "/tekhsi.Connect/RequestNewSequence", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConnectServer is the server API for the Connect service.
type ConnectServer interface {
	Connect(context.Context, *ConnectRequest) (*ConnectReply, error)
	Disconnect(context.Context, *ConnectRequest) (*ConnectReply, error)
	KeepAlive(context.Context, *ConnectRequest) (*ConnectReply, error)
	RequestAvailableNames(context.Context, *ConnectRequest) (*AvailableNamesReply, error)
	RequestNewSequence(context.Context, *ConnectRequest) (*ConnectReply, error)
}

func RegisterConnectServer(s grpc.ServiceRegistrar, srv ConnectServer) {
	s.RegisterService(&Connect_ServiceDesc, srv)
}

func _Connect_Connect_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConnectServer).Connect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tekhsi.Connect/Connect",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConnectServer).Connect(ctx, req.(*ConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Connect_Disconnect_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConnectServer).Disconnect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tekhsi.Connect/Disconnect",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConnectServer).Disconnect(ctx, req.(*ConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Connect_KeepAlive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConnectServer).KeepAlive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tekhsi.Connect/KeepAlive",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConnectServer).KeepAlive(ctx, req.(*ConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Connect_RequestAvailableNames_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConnectServer).RequestAvailableNames(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tekhsi.Connect/RequestAvailableNames",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConnectServer).RequestAvailableNames(ctx, req.(*ConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Connect_RequestNewSequence_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConnectServer).RequestNewSequence(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tekhsi.Connect/RequestNewSequence",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConnectServer).RequestNewSequence(ctx, req.(*ConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Connect_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tekhsi.Connect",
	HandlerType: (*ConnectServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Connect",
			Handler:    _Connect_Connect_Handler,
		},
		{
			MethodName: "Disconnect",
			Handler:    _Connect_Disconnect_Handler,
		},
		{
			MethodName: "KeepAlive",
			Handler:    _Connect_KeepAlive_Handler,
		},
		{
			MethodName: "RequestAvailableNames",
			Handler:    _Connect_RequestAvailableNames_Handler,
		},
		{
			MethodName: "RequestNewSequence",
			Handler:    _Connect_RequestNewSequence_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/tekhsi.proto",
}

// NativeDataClient is the client API for the NativeData service.
type NativeDataClient interface {
	GetWaveform(ctx context.Context, in *WaveformRequest, opts ...grpc.CallOption) (NativeData_GetWaveformClient, error)
	GetRawWaveform(ctx context.Context, in *WaveformRequest, opts ...grpc.CallOption) (NativeData_GetRawWaveformClient, error)
}

type nativeDataClient struct {
	cc grpc.ClientConnInterface
}

func NewNativeDataClient(cc grpc.ClientConnInterface) NativeDataClient {
	return &nativeDataClient{cc}
}

func (c *nativeDataClient) GetWaveform(ctx context.Context, in *WaveformRequest, opts ...grpc.CallOption) (NativeData_GetWaveformClient, error) {
	stream, err := c.cc.NewStream(ctx, &NativeData_ServiceDesc.Streams[0], "/tekhsi.NativeData/GetWaveform", opts...)
	if err != nil {
		return nil, err
	}
	x := &nativeDataGetWaveformClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type NativeData_GetWaveformClient interface {
	Recv() (*NormalizedReply, error)
	grpc.ClientStream
}

type nativeDataGetWaveformClient struct {
	grpc.ClientStream
}

func (x *nativeDataGetWaveformClient) Recv() (*NormalizedReply, error) {
	m := new(NormalizedReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *nativeDataClient) GetRawWaveform(ctx context.Context, in *WaveformRequest, opts ...grpc.CallOption) (NativeData_GetRawWaveformClient, error) {
	stream, err := c.cc.NewStream(ctx, &NativeData_ServiceDesc.Streams[1], "/tekhsi.NativeData/GetRawWaveform", opts...)
	if err != nil {
		return nil, err
	}
	x := &nativeDataGetRawWaveformClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type NativeData_GetRawWaveformClient interface {
	Recv() (*RawReply, error)
	grpc.ClientStream
}

type nativeDataGetRawWaveformClient struct {
	grpc.ClientStream
}

func (x *nativeDataGetRawWaveformClient) Recv() (*RawReply, error) {
	m := new(RawReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// NativeDataServer is the server API for the NativeData service.
type NativeDataServer interface {
	GetWaveform(*WaveformRequest, NativeData_GetWaveformServer) error
	GetRawWaveform(*WaveformRequest, NativeData_GetRawWaveformServer) error
}

func RegisterNativeDataServer(s grpc.ServiceRegistrar, srv NativeDataServer) {
	s.RegisterService(&NativeData_ServiceDesc, srv)
}

func _NativeData_GetWaveform_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WaveformRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(NativeDataServer).GetWaveform(m, &nativeDataGetWaveformServer{stream})
}

type NativeData_GetWaveformServer interface {
	Send(*NormalizedReply) error
	grpc.ServerStream
}

type nativeDataGetWaveformServer struct {
	grpc.ServerStream
}

func (x *nativeDataGetWaveformServer) Send(m *NormalizedReply) error {
	return x.ServerStream.SendMsg(m)
}

func _NativeData_GetRawWaveform_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WaveformRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(NativeDataServer).GetRawWaveform(m, &nativeDataGetRawWaveformServer{stream})
}

type NativeData_GetRawWaveformServer interface {
	Send(*RawReply) error
	grpc.ServerStream
}

type nativeDataGetRawWaveformServer struct {
	grpc.ServerStream
}

func (x *nativeDataGetRawWaveformServer) Send(m *RawReply) error {
	return x.ServerStream.SendMsg(m)
}

var NativeData_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tekhsi.NativeData",
	HandlerType: (*NativeDataServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetWaveform",
			Handler:       _NativeData_GetWaveform_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "GetRawWaveform",
			Handler:       _NativeData_GetRawWaveform_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "proto/tekhsi.proto",
}
