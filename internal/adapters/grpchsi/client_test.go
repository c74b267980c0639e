package grpchsi

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/tektronix/TekHSI/internal/domain"
	"github.com/tektronix/TekHSI/internal/pb"
	"github.com/tektronix/TekHSI/internal/ports"
)

// testServer is a minimal in-process TekHSI endpoint.
type testServer struct {
	connectStatus pb.ConnectStatus
	symbols       []string
	header        *pb.WaveformHeader
	chunks        [][]byte
	streamStatus  pb.WfmReplyStatus
}

func (s *testServer) Connect(_ context.Context, req *pb.ConnectRequest) (*pb.ConnectReply, error) {
	status := s.connectStatus
	if status == pb.ConnectStatus_CONNECT_STATUS_UNSPECIFIED {
		status = pb.ConnectStatus_CONNECT_STATUS_SUCCESS
	}
	return &pb.ConnectReply{Status: status}, nil
}

func (s *testServer) Disconnect(context.Context, *pb.ConnectRequest) (*pb.ConnectReply, error) {
	return &pb.ConnectReply{Status: pb.ConnectStatus_CONNECT_STATUS_SUCCESS}, nil
}

func (s *testServer) KeepAlive(context.Context, *pb.ConnectRequest) (*pb.ConnectReply, error) {
	return &pb.ConnectReply{Status: pb.ConnectStatus_CONNECT_STATUS_SUCCESS}, nil
}

func (s *testServer) RequestAvailableNames(context.Context, *pb.ConnectRequest) (*pb.AvailableNamesReply, error) {
	return &pb.AvailableNamesReply{
		Status:      pb.ConnectStatus_CONNECT_STATUS_SUCCESS,
		Symbolnames: s.symbols,
	}, nil
}

func (s *testServer) RequestNewSequence(context.Context, *pb.ConnectRequest) (*pb.ConnectReply, error) {
	return &pb.ConnectReply{Status: pb.ConnectStatus_CONNECT_STATUS_SUCCESS}, nil
}

func (s *testServer) GetWaveform(req *pb.WaveformRequest, stream pb.NativeData_GetWaveformServer) error {
	return errors.New("not used in these tests")
}

func (s *testServer) GetRawWaveform(req *pb.WaveformRequest, stream pb.NativeData_GetRawWaveformServer) error {
	if s.streamStatus != pb.WfmReplyStatus_WFM_REPLY_STATUS_UNSPECIFIED &&
		s.streamStatus != pb.WfmReplyStatus_WFM_REPLY_STATUS_SUCCESS {
		return stream.Send(&pb.RawReply{Status: s.streamStatus})
	}
	if err := stream.Send(&pb.RawReply{
		Status:       pb.WfmReplyStatus_WFM_REPLY_STATUS_SUCCESS,
		Headerordata: &pb.RawData{Header: s.header},
	}); err != nil {
		return err
	}
	for _, chunk := range s.chunks {
		if err := stream.Send(&pb.RawReply{
			Status:       pb.WfmReplyStatus_WFM_REPLY_STATUS_SUCCESS,
			Headerordata: &pb.RawData{Chunk: &pb.RawChunk{Data: chunk}},
		}); err != nil {
			return err
		}
	}
	return nil
}

func startServer(t *testing.T, srv *testServer) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	grpcServer := grpc.NewServer()
	pb.RegisterConnectServer(grpcServer, srv)
	pb.RegisterNativeDataServer(grpcServer, srv)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	client := NewWithConn(conn, "test-client")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestConnectRoundTrip(t *testing.T) {
	client := startServer(t, &testServer{})
	require.NoError(t, client.Connect(context.Background()))
	require.NoError(t, client.KeepAlive(context.Background()))
	require.NoError(t, client.ForceSequence(context.Background()))
	require.NoError(t, client.Disconnect(context.Background()))
}

func TestConnectRefused(t *testing.T) {
	client := startServer(t, &testServer{
		connectStatus: pb.ConnectStatus_CONNECT_STATUS_INUSE,
	})

	err := client.Connect(context.Background())
	var connectErr *ports.ConnectError
	require.ErrorAs(t, err, &connectErr)
	assert.Equal(t, ports.ConnectInUse, connectErr.Status)
}

func TestAvailableNames(t *testing.T) {
	client := startServer(t, &testServer{symbols: []string{"ch1", "ch1_iq", "ch4_DAll"}})

	names, err := client.AvailableNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ch1", "ch1_iq", "ch4_DAll"}, names)
}

func TestRawWaveformStream(t *testing.T) {
	header := &pb.WaveformHeader{
		Sourcename:        "ch1",
		Sourcewidth:       2,
		Dataid:            42,
		Transid:           42,
		Hasdata:           true,
		Noofsamples:       6,
		Horizontalspacing: 1e-9,
		Verticalspacing:   0.01,
		Wfmtype:           pb.WfmType_WFM_TYPE_ANALOG_16,
		Pairtype:          pb.WfmPairType_WFM_PAIR_TYPE_NONE,
	}
	client := startServer(t, &testServer{
		header: header,
		chunks: [][]byte{{1, 0, 2, 0}, {3, 0, 4, 0, 5, 0, 6, 0}},
	})

	stream, err := client.GetRawWaveform(context.Background(), "ch1", 4)
	require.NoError(t, err)

	msg, err := stream.Recv()
	require.NoError(t, err)
	require.NotNil(t, msg.Header)
	assert.Equal(t, "ch1", msg.Header.SourceName)
	assert.Equal(t, uint64(42), msg.Header.TransID)
	assert.Equal(t, 6, msg.Header.SampleCount)
	assert.Equal(t, domain.WfmTypeAnalog16, msg.Header.Type)

	var payload []byte
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		require.Nil(t, msg.Header)
		payload = append(payload, msg.Raw...)
	}
	assert.Len(t, payload, 12)
}

func TestStreamStatusMapped(t *testing.T) {
	client := startServer(t, &testServer{
		streamStatus: pb.WfmReplyStatus_WFM_REPLY_STATUS_SOURCENAME_MISSING,
	})

	stream, err := client.GetRawWaveform(context.Background(), "nope", 4)
	require.NoError(t, err)

	_, err = stream.Recv()
	var wfmErr *ports.WfmError
	require.ErrorAs(t, err, &wfmErr)
	assert.Equal(t, ports.WfmSourceNameMissing, wfmErr.Status)
}
