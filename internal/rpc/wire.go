package rpc

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Message is implemented by every request and response type. Encoding is
// protobuf wire format matching api/hospital/v1/hospital.proto.
type Message interface {
	appendWire(b []byte) []byte
	consumeWire(b []byte) error
}

type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

func (f field) isBytes() bool  { return f.typ == protowire.BytesType }
func (f field) isVarint() bool { return f.typ == protowire.VarintType }

// eachField walks an encoded message, skipping groups and fixed-width values.
func eachField(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendOptString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	return appendString(b, num, *v)
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendOptInt(b []byte, num protowire.Number, v *int64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

func appendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendWire(nil))
}

// timestamps are google.protobuf.Timestamp submessages
func appendTime(b []byte, num protowire.Number, t *time.Time) []byte {
	if t == nil {
		return b
	}
	inner, err := proto.Marshal(timestamppb.New(*t))
	if err != nil {
		// Timestamp has no required fields; marshal cannot fail
		panic(err)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func parseTime(b []byte) (*time.Time, error) {
	ts := &timestamppb.Timestamp{}
	if err := proto.Unmarshal(b, ts); err != nil {
		return nil, err
	}
	if err := ts.CheckValid(); err != nil {
		return nil, err
	}
	t := ts.AsTime()
	return &t, nil
}

func optString(f field) *string {
	s := string(f.bytes)
	return &s
}

func optInt(f field) *int64 {
	v := int64(f.varint)
	return &v
}

func wireErr(msg string, err error) error {
	return fmt.Errorf("rpc: decode %s: %w", msg, err)
}
