// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the records the state store persists. Field order
// is part of the wire format; append new fields, never reorder.

// StateEntryMUS serializes StateEntry values.
var StateEntryMUS = stateEntryMUS{}

type stateEntryMUS struct{}

func (s stateEntryMUS) Marshal(e StateEntry, bs []byte) (n int) {
	n = ord.String.Marshal(e.Key, bs)
	n += ord.ByteSlice.Marshal(e.Value, bs[n:])
	n += ord.String.Marshal(e.AgentID, bs[n:])
	n += raw.TimeUnixMilli.Marshal(e.UpdatedAt, bs[n:])
	return
}

func (s stateEntryMUS) Unmarshal(bs []byte) (e StateEntry, n int, err error) {
	var n1 int
	e.Key, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	e.Value, n1, err = ord.ByteSlice.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.AgentID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var t time.Time
	t, n1, err = raw.TimeUnixMilli.Unmarshal(bs[n:])
	n += n1
	e.UpdatedAt = t
	return
}

func (s stateEntryMUS) Size(e StateEntry) (size int) {
	size = ord.String.Size(e.Key)
	size += ord.ByteSlice.Size(e.Value)
	size += ord.String.Size(e.AgentID)
	size += raw.TimeUnixMilli.Size(e.UpdatedAt)
	return
}

func (s stateEntryMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.ByteSlice.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMilli.Skip(bs[n:])
	n += n1
	return
}

// IterationRecordMUS serializes IterationRecord values.
var IterationRecordMUS = iterationRecordMUS{}

type iterationRecordMUS struct{}

func (s iterationRecordMUS) Marshal(r IterationRecord, bs []byte) (n int) {
	n = varint.Int.Marshal(r.Iteration, bs)
	n += ord.String.Marshal(r.Query, bs[n:])
	n += ord.String.Marshal(string(r.Strategy), bs[n:])
	n += varint.Float64.Marshal(r.QualityBefore, bs[n:])
	n += varint.Float64.Marshal(r.QualityAfter, bs[n:])
	n += varint.Float64.Marshal(r.Improvement, bs[n:])
	n += varint.Int.Marshal(r.ResultCount, bs[n:])
	return
}

func (s iterationRecordMUS) Unmarshal(bs []byte) (r IterationRecord, n int, err error) {
	var n1 int
	r.Iteration, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Query, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var strategy string
	strategy, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Strategy = Strategy(strategy)
	r.QualityBefore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.QualityAfter, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Improvement, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.ResultCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s iterationRecordMUS) Size(r IterationRecord) (size int) {
	size = varint.Int.Size(r.Iteration)
	size += ord.String.Size(r.Query)
	size += ord.String.Size(string(r.Strategy))
	size += varint.Float64.Size(r.QualityBefore)
	size += varint.Float64.Size(r.QualityAfter)
	size += varint.Float64.Size(r.Improvement)
	size += varint.Int.Size(r.ResultCount)
	return
}

func (s iterationRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		n1, err = varint.Float64.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}
