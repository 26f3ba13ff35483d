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

package state

import (
	"github.com/poiesic/adaptivesearch/core"
)

// MarshalStateEntry serializes a StateEntry to bytes.
func MarshalStateEntry(entry *core.StateEntry) []byte {
	buf := make([]byte, core.StateEntryMUS.Size(*entry))
	core.StateEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalStateEntry deserializes a StateEntry from bytes.
func UnmarshalStateEntry(data []byte) (*core.StateEntry, error) {
	entry, _, err := core.StateEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarshalIterationRecord serializes an IterationRecord to bytes.
func MarshalIterationRecord(record *core.IterationRecord) []byte {
	buf := make([]byte, core.IterationRecordMUS.Size(*record))
	core.IterationRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalIterationRecord deserializes an IterationRecord from bytes.
func UnmarshalIterationRecord(data []byte) (*core.IterationRecord, error) {
	record, _, err := core.IterationRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
