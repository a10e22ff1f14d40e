package logging

import (
	"fmt"
	"sort"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// timeLayout renders millisecond timestamps with a comma separator,
// e.g. "2025-08-25 09:30:00,123".
const timeLayout = "2006-01-02 15:04:05,000"

var bufferPool = buffer.NewPool()

// recordEncoder renders one record per line as
//
//	timestamp - logger name - LEVEL - message
//
// Structured fields, when present, follow the message as sorted key=value
// pairs. zap's stock console encoder fixes the field order as
// time/level/name, so the name-before-level layout needs its own encoder.
type recordEncoder struct {
	*zapcore.MapObjectEncoder
}

func newRecordEncoder() *recordEncoder {
	return &recordEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

// Clone copies the encoder along with any fields accumulated via With.
func (e *recordEncoder) Clone() zapcore.Encoder {
	clone := newRecordEncoder()
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return clone
}

// EncodeEntry serializes the entry and its fields into a pooled buffer.
func (e *recordEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()

	line.AppendString(ent.Time.Format(timeLayout))
	line.AppendString(" - ")
	name := ent.LoggerName
	if name == "" {
		name = "root"
	}
	line.AppendString(name)
	line.AppendString(" - ")
	line.AppendString(ent.Level.CapitalString())
	line.AppendString(" - ")
	line.AppendString(ent.Message)

	extra := zapcore.NewMapObjectEncoder()
	for k, v := range e.Fields {
		extra.Fields[k] = v
	}
	for i := range fields {
		fields[i].AddTo(extra)
	}
	keys := make([]string, 0, len(extra.Fields))
	for k := range extra.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line.AppendByte(' ')
		line.AppendString(k)
		line.AppendByte('=')
		fmt.Fprintf(line, "%v", extra.Fields[k])
	}

	line.AppendString(zapcore.DefaultLineEnding)
	return line, nil
}
