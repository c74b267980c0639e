// Package grpchsi is the gRPC adapter for the instrument port: it speaks
// the TekHSI wire protocol defined in proto/tekhsi.proto.
package grpchsi

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tektronix/TekHSI/internal/domain"
	"github.com/tektronix/TekHSI/internal/pb"
	"github.com/tektronix/TekHSI/internal/ports"
)

// Client implements ports.Instrument over a single gRPC channel. The
// channel is safe for the pipeline's parallel fetch workers to share.
type Client struct {
	conn    *grpc.ClientConn
	name    string
	connect pb.ConnectClient
	native  pb.NativeDataClient
}

// Dial opens the channel to the instrument. The clientName identifies this
// session in every request.
func Dial(target, clientName string) (*Client, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("tekhsi: dial %s: %w", target, err)
	}
	return NewWithConn(conn, clientName), nil
}

// NewWithConn wraps an already-dialed channel, for callers that need their
// own transport credentials or dialer.
func NewWithConn(conn *grpc.ClientConn, clientName string) *Client {
	return &Client{
		conn:    conn,
		name:    clientName,
		connect: pb.NewConnectClient(conn),
		native:  pb.NewNativeDataClient(conn),
	}
}

func (c *Client) request() *pb.ConnectRequest {
	return &pb.ConnectRequest{Name: c.name}
}

func (c *Client) Connect(ctx context.Context) error {
	reply, err := c.connect.Connect(ctx, c.request())
	if err != nil {
		return err
	}
	return connectErr("connect", reply.GetStatus())
}

func (c *Client) Disconnect(ctx context.Context) error {
	reply, err := c.connect.Disconnect(ctx, c.request())
	if err != nil {
		return err
	}
	return connectErr("disconnect", reply.GetStatus())
}

func (c *Client) KeepAlive(ctx context.Context) error {
	reply, err := c.connect.KeepAlive(ctx, c.request())
	if err != nil {
		return err
	}
	return connectErr("keepalive", reply.GetStatus())
}

func (c *Client) AvailableNames(ctx context.Context) ([]string, error) {
	reply, err := c.connect.RequestAvailableNames(ctx, c.request())
	if err != nil {
		return nil, err
	}
	if err := connectErr("available names", reply.GetStatus()); err != nil {
		return nil, err
	}
	return reply.GetSymbolnames(), nil
}

func (c *Client) ForceSequence(ctx context.Context) error {
	reply, err := c.connect.RequestNewSequence(ctx, c.request())
	if err != nil {
		return err
	}
	return connectErr("new sequence", reply.GetStatus())
}

func (c *Client) GetRawWaveform(ctx context.Context, source string, chunkSize int) (ports.WaveformStream, error) {
	stream, err := c.native.GetRawWaveform(ctx, &pb.WaveformRequest{
		Sourcename: source,
		Chunksize:  int32(chunkSize),
	})
	if err != nil {
		return nil, err
	}
	return &rawStream{stream: stream, source: source}, nil
}

func (c *Client) GetWaveform(ctx context.Context, source string, chunkSize int) (ports.WaveformStream, error) {
	stream, err := c.native.GetWaveform(ctx, &pb.WaveformRequest{
		Sourcename: source,
		Chunksize:  int32(chunkSize),
	})
	if err != nil {
		return nil, err
	}
	return &normalizedStream{stream: stream, source: source}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

type rawStream struct {
	stream pb.NativeData_GetRawWaveformClient
	source string
}

func (s *rawStream) Recv() (*ports.StreamMessage, error) {
	reply, err := s.stream.Recv()
	if err != nil {
		return nil, err // io.EOF on clean end of stream
	}
	if st := reply.GetStatus(); st != pb.WfmReplyStatus_WFM_REPLY_STATUS_SUCCESS {
		return nil, &ports.WfmError{Source: s.source, Status: ports.WfmStatus(st)}
	}
	body := reply.GetHeaderordata()
	switch {
	case body.GetHeader() != nil:
		return &ports.StreamMessage{Header: headerFromWire(body.GetHeader())}, nil
	case body.GetChunk() != nil:
		return &ports.StreamMessage{Raw: body.GetChunk().GetData()}, nil
	default:
		return nil, fmt.Errorf("tekhsi: empty stream message for %q", s.source)
	}
}

type normalizedStream struct {
	stream pb.NativeData_GetWaveformClient
	source string
}

func (s *normalizedStream) Recv() (*ports.StreamMessage, error) {
	reply, err := s.stream.Recv()
	if err != nil {
		return nil, err
	}
	if st := reply.GetStatus(); st != pb.WfmReplyStatus_WFM_REPLY_STATUS_SUCCESS {
		return nil, &ports.WfmError{Source: s.source, Status: ports.WfmStatus(st)}
	}
	body := reply.GetHeaderordata()
	switch {
	case body.GetHeader() != nil:
		return &ports.StreamMessage{Header: headerFromWire(body.GetHeader())}, nil
	case body.GetChunk() != nil:
		return &ports.StreamMessage{Normalized: body.GetChunk().GetData()}, nil
	default:
		return nil, fmt.Errorf("tekhsi: empty stream message for %q", s.source)
	}
}

func headerFromWire(h *pb.WaveformHeader) *domain.WaveformHeader {
	return &domain.WaveformHeader{
		SourceName:  h.Sourcename,
		SourceWidth: int(h.Sourcewidth),
		DataID:      h.Dataid,
		TransID:     h.Transid,
		HasData:     h.Hasdata,
		SampleCount: int(h.Noofsamples),

		HorizontalSpacing:             h.Horizontalspacing,
		HorizontalZeroIndex:           h.Horizontalzeroindex,
		HorizontalFractionalZeroIndex: h.Horizontalfractionalzeroindex,
		HorizontalUnits:               h.Horizontalunits,

		VerticalSpacing: h.Verticalspacing,
		VerticalOffset:  h.Verticaloffset,
		VerticalUnits:   h.Verticalunits,

		Type:     domain.WfmType(h.Wfmtype),
		PairType: domain.PairType(h.Pairtype),
		Bitmask:  h.Bitmask,

		ChunkSize: int(h.Chunksize),

		IQ: domain.IQBlock{
			CenterFrequency: h.IqCenterfrequency,
			FFTLength:       h.IqFftlength,
			RBW:             h.IqRbw,
			Span:            h.IqSpan,
			WindowType:      h.IqWindowtype,
		},
	}
}

func connectErr(op string, st pb.ConnectStatus) error {
	if st == pb.ConnectStatus_CONNECT_STATUS_SUCCESS ||
		st == pb.ConnectStatus_CONNECT_STATUS_UNSPECIFIED {
		return nil
	}
	return &ports.ConnectError{Op: op, Status: ports.ConnectStatus(st)}
}

var (
	_ ports.Instrument     = (*Client)(nil)
	_ ports.WaveformStream = (*rawStream)(nil)
	_ ports.WaveformStream = (*normalizedStream)(nil)
)
