// Wire types for proto/tekhsi.proto, kept in the field/tag shape protoc-gen-go
// emits so a regenerated file is a drop-in replacement.

package pb

import (
	fmt "fmt"
)

type ConnectStatus int32

const (
	ConnectStatus_CONNECT_STATUS_UNSPECIFIED      ConnectStatus = 0
	ConnectStatus_CONNECT_STATUS_SUCCESS          ConnectStatus = 1
	ConnectStatus_CONNECT_STATUS_INUSE            ConnectStatus = 2
	ConnectStatus_CONNECT_STATUS_NOT_CONNECTED    ConnectStatus = 3
	ConnectStatus_CONNECT_STATUS_OUTSIDE_SEQUENCE ConnectStatus = 4
	ConnectStatus_CONNECT_STATUS_TIMEOUT          ConnectStatus = 5
	ConnectStatus_CONNECT_STATUS_UNKNOWN          ConnectStatus = 6
)

var ConnectStatus_name = map[int32]string{
	0: "CONNECT_STATUS_UNSPECIFIED",
	1: "CONNECT_STATUS_SUCCESS",
	2: "CONNECT_STATUS_INUSE",
	3: "CONNECT_STATUS_NOT_CONNECTED",
	4: "CONNECT_STATUS_OUTSIDE_SEQUENCE",
	5: "CONNECT_STATUS_TIMEOUT",
	6: "CONNECT_STATUS_UNKNOWN",
}

func (x ConnectStatus) String() string {
	if s, ok := ConnectStatus_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("ConnectStatus(%d)", int32(x))
}

type WfmReplyStatus int32

const (
	WfmReplyStatus_WFM_REPLY_STATUS_UNSPECIFIED        WfmReplyStatus = 0
	WfmReplyStatus_WFM_REPLY_STATUS_SUCCESS            WfmReplyStatus = 1
	WfmReplyStatus_WFM_REPLY_STATUS_NO_CONNECTION      WfmReplyStatus = 2
	WfmReplyStatus_WFM_REPLY_STATUS_OUTSIDE_SEQUENCE   WfmReplyStatus = 3
	WfmReplyStatus_WFM_REPLY_STATUS_SOURCENAME_MISSING WfmReplyStatus = 4
	WfmReplyStatus_WFM_REPLY_STATUS_TYPE_MISMATCH      WfmReplyStatus = 5
)

var WfmReplyStatus_name = map[int32]string{
	0: "WFM_REPLY_STATUS_UNSPECIFIED",
	1: "WFM_REPLY_STATUS_SUCCESS",
	2: "WFM_REPLY_STATUS_NO_CONNECTION",
	3: "WFM_REPLY_STATUS_OUTSIDE_SEQUENCE",
	4: "WFM_REPLY_STATUS_SOURCENAME_MISSING",
	5: "WFM_REPLY_STATUS_TYPE_MISMATCH",
}

func (x WfmReplyStatus) String() string {
	if s, ok := WfmReplyStatus_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("WfmReplyStatus(%d)", int32(x))
}

type WfmType int32

const (
	WfmType_WFM_TYPE_UNSPECIFIED  WfmType = 0
	WfmType_WFM_TYPE_ANALOG_8     WfmType = 1
	WfmType_WFM_TYPE_ANALOG_16    WfmType = 2
	WfmType_WFM_TYPE_ANALOG_FLOAT WfmType = 3
	WfmType_WFM_TYPE_DIGITAL_8    WfmType = 4
	WfmType_WFM_TYPE_DIGITAL_16   WfmType = 5
	WfmType_WFM_TYPE_ANALOG_16_IQ WfmType = 6
	WfmType_WFM_TYPE_ANALOG_32_IQ WfmType = 7
)

var WfmType_name = map[int32]string{
	0: "WFM_TYPE_UNSPECIFIED",
	1: "WFM_TYPE_ANALOG_8",
	2: "WFM_TYPE_ANALOG_16",
	3: "WFM_TYPE_ANALOG_FLOAT",
	4: "WFM_TYPE_DIGITAL_8",
	5: "WFM_TYPE_DIGITAL_16",
	6: "WFM_TYPE_ANALOG_16_IQ",
	7: "WFM_TYPE_ANALOG_32_IQ",
}

func (x WfmType) String() string {
	if s, ok := WfmType_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("WfmType(%d)", int32(x))
}

type WfmPairType int32

const (
	WfmPairType_WFM_PAIR_TYPE_UNSPECIFIED WfmPairType = 0
	WfmPairType_WFM_PAIR_TYPE_NONE        WfmPairType = 1
	WfmPairType_WFM_PAIR_TYPE_PAIR        WfmPairType = 2
)

var WfmPairType_name = map[int32]string{
	0: "WFM_PAIR_TYPE_UNSPECIFIED",
	1: "WFM_PAIR_TYPE_NONE",
	2: "WFM_PAIR_TYPE_PAIR",
}

func (x WfmPairType) String() string {
	if s, ok := WfmPairType_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("WfmPairType(%d)", int32(x))
}

type ConnectRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *ConnectRequest) Reset()         { *m = ConnectRequest{} }
func (m *ConnectRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConnectRequest) ProtoMessage()    {}

func (m *ConnectRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type ConnectReply struct {
	Status ConnectStatus `protobuf:"varint,1,opt,name=status,proto3,enum=tekhsi.ConnectStatus" json:"status,omitempty"`
}

func (m *ConnectReply) Reset()         { *m = ConnectReply{} }
func (m *ConnectReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConnectReply) ProtoMessage()    {}

func (m *ConnectReply) GetStatus() ConnectStatus {
	if m != nil {
		return m.Status
	}
	return ConnectStatus_CONNECT_STATUS_UNSPECIFIED
}

type AvailableNamesReply struct {
	Status      ConnectStatus `protobuf:"varint,1,opt,name=status,proto3,enum=tekhsi.ConnectStatus" json:"status,omitempty"`
	Symbolnames []string      `protobuf:"bytes,2,rep,name=symbolnames,proto3" json:"symbolnames,omitempty"`
}

func (m *AvailableNamesReply) Reset()         { *m = AvailableNamesReply{} }
func (m *AvailableNamesReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*AvailableNamesReply) ProtoMessage()    {}

func (m *AvailableNamesReply) GetStatus() ConnectStatus {
	if m != nil {
		return m.Status
	}
	return ConnectStatus_CONNECT_STATUS_UNSPECIFIED
}

func (m *AvailableNamesReply) GetSymbolnames() []string {
	if m != nil {
		return m.Symbolnames
	}
	return nil
}

type WaveformRequest struct {
	Sourcename string `protobuf:"bytes,1,opt,name=sourcename,proto3" json:"sourcename,omitempty"`
	Chunksize  int32  `protobuf:"varint,2,opt,name=chunksize,proto3" json:"chunksize,omitempty"`
}

func (m *WaveformRequest) Reset()         { *m = WaveformRequest{} }
func (m *WaveformRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*WaveformRequest) ProtoMessage()    {}

func (m *WaveformRequest) GetSourcename() string {
	if m != nil {
		return m.Sourcename
	}
	return ""
}

func (m *WaveformRequest) GetChunksize() int32 {
	if m != nil {
		return m.Chunksize
	}
	return 0
}

type WaveformHeader struct {
	Sourcename                    string      `protobuf:"bytes,1,opt,name=sourcename,proto3" json:"sourcename,omitempty"`
	Sourcewidth                   int32       `protobuf:"varint,2,opt,name=sourcewidth,proto3" json:"sourcewidth,omitempty"`
	Dataid                        uint64      `protobuf:"varint,3,opt,name=dataid,proto3" json:"dataid,omitempty"`
	Transid                       uint64      `protobuf:"varint,4,opt,name=transid,proto3" json:"transid,omitempty"`
	Hasdata                       bool        `protobuf:"varint,5,opt,name=hasdata,proto3" json:"hasdata,omitempty"`
	Noofsamples                   uint64      `protobuf:"varint,6,opt,name=noofsamples,proto3" json:"noofsamples,omitempty"`
	Horizontalspacing             float64     `protobuf:"fixed64,7,opt,name=horizontalspacing,proto3" json:"horizontalspacing,omitempty"`
	Horizontalzeroindex           float64     `protobuf:"fixed64,8,opt,name=horizontalzeroindex,proto3" json:"horizontalzeroindex,omitempty"`
	Horizontalfractionalzeroindex float64     `protobuf:"fixed64,9,opt,name=horizontalfractionalzeroindex,proto3" json:"horizontalfractionalzeroindex,omitempty"`
	Horizontalunits               string      `protobuf:"bytes,10,opt,name=horizontalunits,proto3" json:"horizontalunits,omitempty"`
	Verticalspacing               float64     `protobuf:"fixed64,11,opt,name=verticalspacing,proto3" json:"verticalspacing,omitempty"`
	Verticaloffset                float64     `protobuf:"fixed64,12,opt,name=verticaloffset,proto3" json:"verticaloffset,omitempty"`
	Verticalunits                 string      `protobuf:"bytes,13,opt,name=verticalunits,proto3" json:"verticalunits,omitempty"`
	Wfmtype                       WfmType     `protobuf:"varint,14,opt,name=wfmtype,proto3,enum=tekhsi.WfmType" json:"wfmtype,omitempty"`
	Pairtype                      WfmPairType `protobuf:"varint,15,opt,name=pairtype,proto3,enum=tekhsi.WfmPairType" json:"pairtype,omitempty"`
	Bitmask                       uint64      `protobuf:"varint,16,opt,name=bitmask,proto3" json:"bitmask,omitempty"`
	Chunksize                     int32       `protobuf:"varint,17,opt,name=chunksize,proto3" json:"chunksize,omitempty"`
	IqCenterfrequency             float64     `protobuf:"fixed64,18,opt,name=iq_centerfrequency,json=iqCenterfrequency,proto3" json:"iq_centerfrequency,omitempty"`
	IqFftlength                   float64     `protobuf:"fixed64,19,opt,name=iq_fftlength,json=iqFftlength,proto3" json:"iq_fftlength,omitempty"`
	IqRbw                         float64     `protobuf:"fixed64,20,opt,name=iq_rbw,json=iqRbw,proto3" json:"iq_rbw,omitempty"`
	IqSpan                        float64     `protobuf:"fixed64,21,opt,name=iq_span,json=iqSpan,proto3" json:"iq_span,omitempty"`
	IqWindowtype                  string      `protobuf:"bytes,22,opt,name=iq_windowtype,json=iqWindowtype,proto3" json:"iq_windowtype,omitempty"`
}

func (m *WaveformHeader) Reset()         { *m = WaveformHeader{} }
func (m *WaveformHeader) String() string { return fmt.Sprintf("%+v", *m) }
func (*WaveformHeader) ProtoMessage()    {}

func (m *WaveformHeader) GetSourcename() string {
	if m != nil {
		return m.Sourcename
	}
	return ""
}

func (m *WaveformHeader) GetSourcewidth() int32 {
	if m != nil {
		return m.Sourcewidth
	}
	return 0
}

func (m *WaveformHeader) GetDataid() uint64 {
	if m != nil {
		return m.Dataid
	}
	return 0
}

func (m *WaveformHeader) GetTransid() uint64 {
	if m != nil {
		return m.Transid
	}
	return 0
}

func (m *WaveformHeader) GetHasdata() bool {
	if m != nil {
		return m.Hasdata
	}
	return false
}

func (m *WaveformHeader) GetNoofsamples() uint64 {
	if m != nil {
		return m.Noofsamples
	}
	return 0
}

func (m *WaveformHeader) GetWfmtype() WfmType {
	if m != nil {
		return m.Wfmtype
	}
	return WfmType_WFM_TYPE_UNSPECIFIED
}

func (m *WaveformHeader) GetPairtype() WfmPairType {
	if m != nil {
		return m.Pairtype
	}
	return WfmPairType_WFM_PAIR_TYPE_UNSPECIFIED
}

type NormalizedChunk struct {
	Data []float32 `protobuf:"fixed32,1,rep,packed,name=data,proto3" json:"data,omitempty"`
}

func (m *NormalizedChunk) Reset()         { *m = NormalizedChunk{} }
func (m *NormalizedChunk) String() string { return fmt.Sprintf("%+v", *m) }
func (*NormalizedChunk) ProtoMessage()    {}

func (m *NormalizedChunk) GetData() []float32 {
	if m != nil {
		return m.Data
	}
	return nil
}

type NormalizedData struct {
	Header *WaveformHeader  `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Chunk  *NormalizedChunk `protobuf:"bytes,2,opt,name=chunk,proto3" json:"chunk,omitempty"`
}

func (m *NormalizedData) Reset()         { *m = NormalizedData{} }
func (m *NormalizedData) String() string { return fmt.Sprintf("%+v", *m) }
func (*NormalizedData) ProtoMessage()    {}

func (m *NormalizedData) GetHeader() *WaveformHeader {
	if m != nil {
		return m.Header
	}
	return nil
}

func (m *NormalizedData) GetChunk() *NormalizedChunk {
	if m != nil {
		return m.Chunk
	}
	return nil
}

type NormalizedReply struct {
	Status       WfmReplyStatus  `protobuf:"varint,1,opt,name=status,proto3,enum=tekhsi.WfmReplyStatus" json:"status,omitempty"`
	Headerordata *NormalizedData `protobuf:"bytes,2,opt,name=headerordata,proto3" json:"headerordata,omitempty"`
}

func (m *NormalizedReply) Reset()         { *m = NormalizedReply{} }
func (m *NormalizedReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*NormalizedReply) ProtoMessage()    {}

func (m *NormalizedReply) GetStatus() WfmReplyStatus {
	if m != nil {
		return m.Status
	}
	return WfmReplyStatus_WFM_REPLY_STATUS_UNSPECIFIED
}

func (m *NormalizedReply) GetHeaderordata() *NormalizedData {
	if m != nil {
		return m.Headerordata
	}
	return nil
}

type RawChunk struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *RawChunk) Reset()         { *m = RawChunk{} }
func (m *RawChunk) String() string { return fmt.Sprintf("%+v", *m) }
func (*RawChunk) ProtoMessage()    {}

func (m *RawChunk) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type RawData struct {
	Header *WaveformHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Chunk  *RawChunk       `protobuf:"bytes,2,opt,name=chunk,proto3" json:"chunk,omitempty"`
}

func (m *RawData) Reset()         { *m = RawData{} }
func (m *RawData) String() string { return fmt.Sprintf("%+v", *m) }
func (*RawData) ProtoMessage()    {}

func (m *RawData) GetHeader() *WaveformHeader {
	if m != nil {
		return m.Header
	}
	return nil
}

func (m *RawData) GetChunk() *RawChunk {
	if m != nil {
		return m.Chunk
	}
	return nil
}

type RawReply struct {
	Status       WfmReplyStatus `protobuf:"varint,1,opt,name=status,proto3,enum=tekhsi.WfmReplyStatus" json:"status,omitempty"`
	Headerordata *RawData       `protobuf:"bytes,2,opt,name=headerordata,proto3" json:"headerordata,omitempty"`
}

func (m *RawReply) Reset()         { *m = RawReply{} }
func (m *RawReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*RawReply) ProtoMessage()    {}

func (m *RawReply) GetStatus() WfmReplyStatus {
	if m != nil {
		return m.Status
	}
	return WfmReplyStatus_WFM_REPLY_STATUS_UNSPECIFIED
}

func (m *RawReply) GetHeaderordata() *RawData {
	if m != nil {
		return m.Headerordata
	}
	return nil
}
