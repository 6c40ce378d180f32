// Package domain holds schedule types, DTOs and ports
package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"huddle/internal/core/interval"
	perr "huddle/internal/platform/errors"

	"golang.org/x/text/unicode/norm"
)

// UserID is the canonical user identifier
// numeric and string ids compare equal once normalized ("42" and 42)
type UserID string

// ParseUserID trims and NFKC folds s, empty ids are rejected
func ParseUserID(s string) (UserID, error) {
	id := normalizeUserID(s)
	if id == "" {
		return "", perr.InvalidArgf("user id is required")
	}
	return id, nil
}

func normalizeUserID(s string) UserID {
	return UserID(strings.TrimSpace(norm.NFKC.String(s)))
}

// String returns the id text
func (u UserID) String() string { return string(u) }

// UnmarshalJSON accepts a JSON string or number
// integral numbers are written without fraction or exponent, 42.0 and 4.2e1 read as "42"
func (u *UserID) UnmarshalJSON(b []byte) error {
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("user id must be a string or a number")
		}
		s = numberID(n)
	}
	*u = normalizeUserID(s)
	return nil
}

func numberID(n json.Number) string {
	r, ok := new(big.Rat).SetString(n.String())
	if ok && r.IsInt() {
		return r.Num().String()
	}
	return n.String()
}

// NormalizeUserIDs normalizes ids and drops repeats keeping first seen order
func NormalizeUserIDs(ids []UserID) ([]UserID, error) {
	out := make([]UserID, 0, len(ids))
	seen := make(map[UserID]struct{}, len(ids))
	for _, raw := range ids {
		id, err := ParseUserID(string(raw))
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// ConflictRecord is an occurrence of a user's commitment overlapping a candidate
type ConflictRecord struct {
	UserID       UserID
	CommitmentID int64
	Interval     interval.Interval
}

// FreeBusy is one user's merged busy set and its complement inside a window
type FreeBusy struct {
	UserID UserID
	Busy   []interval.Interval
	Free   []interval.Interval
}
