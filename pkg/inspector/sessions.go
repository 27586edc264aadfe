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

import "regexp"

// unknownOrigin is the literal origin some display managers record in
// utmp for sessions with no resolvable source.
const unknownOrigin = "(unknown)"

var (
	// remoteOriginRe matches origins that name a remote host: an
	// alphanumeric hostname token followed by a dot, anchored at the
	// start (after an optional paren) so display designators like
	// ":0.0" do not qualify.
	remoteOriginRe = regexp.MustCompile(`^\(?[A-Za-z0-9][A-Za-z0-9-]*\.`)

	// displayOriginRe matches purely numeric display designators such
	// as ":0", ":0.0", or "(:0)".
	displayOriginRe = regexp.MustCompile(`^\(?:[0-9]+(\.[0-9]+)?\)?$`)
)

// countUsers returns the number of distinct session identities,
// deduplicated by the identity field. When any session carries the
// literal "(unknown)" origin, the deduplicated count is reduced by
// exactly one regardless of how many such sessions exist. That
// adjustment is a long-standing quirk of the counting convention this
// daemon reproduces; as a consequence the remote count computed by
// countRemoteUsers can exceed this value.
func countUsers(sessions []Session) int {
	distinct := make(map[string]struct{}, len(sessions))
	unknown := false

	for _, s := range sessions {
		distinct[s.User] = struct{}{}
		if s.Origin == unknownOrigin {
			unknown = true
		}
	}

	n := len(distinct)
	if unknown {
		n--
	}
	if n < 0 {
		n = 0
	}
	return n
}

// countRemoteUsers returns the number of distinct identities whose
// session origin matches the remote-host pattern. Counted independently
// of countUsers.
func countRemoteUsers(sessions []Session) int {
	distinct := make(map[string]struct{})
	for _, s := range sessions {
		if remoteOriginRe.MatchString(s.Origin) {
			distinct[s.User] = struct{}{}
		}
	}
	return len(distinct)
}

// graphicalSessionPresent reports whether any session origin is a
// numeric display designator.
func graphicalSessionPresent(sessions []Session) bool {
	for _, s := range sessions {
		if displayOriginRe.MatchString(s.Origin) {
			return true
		}
	}
	return false
}
