// Copyright (c) 2025, Sysmond Authors.
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

package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountUsers(t *testing.T) {
	tests := []struct {
		name     string
		sessions []Session
		expected int
	}{
		{
			name:     "no sessions",
			sessions: nil,
			expected: 0,
		},
		{
			name: "duplicate identities deduplicated",
			sessions: []Session{
				{User: "alice", Origin: "pts/0"},
				{User: "alice", Origin: "pts/1"},
				{User: "bob", Origin: "pts/2"},
			},
			expected: 2,
		},
		{
			name: "single unknown session removes one",
			sessions: []Session{
				{User: "alice", Origin: "(unknown)"},
				{User: "bob", Origin: "pts/0"},
			},
			expected: 1,
		},
		{
			name: "many unknown sessions still remove exactly one",
			sessions: []Session{
				{User: "gdm", Origin: "(unknown)"},
				{User: "gdm", Origin: "(unknown)"},
				{User: "alice", Origin: "(unknown)"},
				{User: "bob", Origin: "pts/0"},
			},
			expected: 2,
		},
		{
			name: "only unknown sessions",
			sessions: []Session{
				{User: "gdm", Origin: "(unknown)"},
			},
			expected: 0,
		},
		{
			name: "unknown must be literal",
			sessions: []Session{
				{User: "alice", Origin: "unknown"},
				{User: "bob", Origin: "pts/0"},
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countUsers(tt.sessions))
		})
	}
}

func TestCountRemoteUsers(t *testing.T) {
	tests := []struct {
		name     string
		sessions []Session
		expected int
	}{
		{
			name: "remote host origins counted",
			sessions: []Session{
				{User: "alice", Origin: "host.example"},
				{User: "bob", Origin: "(build.example.com)"},
				{User: "carol", Origin: ""},
			},
			expected: 2,
		},
		{
			name: "remote identities deduplicated",
			sessions: []Session{
				{User: "alice", Origin: "host.example"},
				{User: "alice", Origin: "other.example"},
			},
			expected: 1,
		},
		{
			name: "display designators are not remote",
			sessions: []Session{
				{User: "alice", Origin: ":0"},
				{User: "bob", Origin: ":0.0"},
				{User: "carol", Origin: "(:0)"},
			},
			expected: 0,
		},
		{
			name: "local terminals are not remote",
			sessions: []Session{
				{User: "alice", Origin: ""},
				{User: "bob", Origin: "(unknown)"},
			},
			expected: 0,
		},
		{
			name: "remote count can exceed adjusted user count",
			sessions: []Session{
				{User: "alice", Origin: "host.example"},
				{User: "alice", Origin: "(unknown)"},
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countRemoteUsers(tt.sessions))
		})
	}
}

func TestGraphicalSessionPresent(t *testing.T) {
	tests := []struct {
		name     string
		sessions []Session
		expected bool
	}{
		{
			name:     "no sessions",
			sessions: nil,
			expected: false,
		},
		{
			name: "bare display designator",
			sessions: []Session{
				{User: "alice", Origin: ":0"},
			},
			expected: true,
		},
		{
			name: "parenthesized display designator",
			sessions: []Session{
				{User: "alice", Origin: "(:0)"},
			},
			expected: true,
		},
		{
			name: "display with screen suffix",
			sessions: []Session{
				{User: "alice", Origin: ":0.0"},
			},
			expected: true,
		},
		{
			name: "remote host is not a display",
			sessions: []Session{
				{User: "alice", Origin: "host.example"},
			},
			expected: false,
		},
		{
			name: "unknown origin is not a display",
			sessions: []Session{
				{User: "gdm", Origin: "(unknown)"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, graphicalSessionPresent(tt.sessions))
		})
	}
}
