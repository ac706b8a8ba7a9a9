// Package codec converts board state to and from its persisted JSON form.
//
// Dates travel as ISO-8601 strings with millisecond precision in UTC
// ("2025-01-15T10:30:00.000Z"). Serialization can fail and says so;
// deserialization never fails from the caller's point of view: any input
// that cannot be decoded yields the defined empty state.
package codec

import (
	"encoding/json/v2"
	"fmt"
	"regexp"
	"time"

	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/errors"
)

// timeLayout keeps the fractional part even when it is zero, so every
// serialized date looks the same on the wire.
const timeLayout = "2006-01-02T15:04:05.000Z"

// isoDatePattern accepts UTC ISO-8601 timestamps with an optional
// fractional second part. Offsets other than "Z" are rejected.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?Z$`)

var timeMarshaler = json.WithMarshalers(
	json.MarshalFunc(func(t time.Time) ([]byte, error) {
		return json.Marshal(t.UTC().Format(timeLayout))
	}),
)

var timeUnmarshaler = json.WithUnmarshalers(
	json.UnmarshalFunc(func(data []byte, t *time.Time) error {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if !isoDatePattern.MatchString(s) {
			return errors.Deserialization(fmt.Sprintf("not an ISO-8601 UTC timestamp: %q", s))
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return errors.Deserialization(fmt.Sprintf("parsing timestamp %q: %v", s, err))
		}
		*t = parsed.UTC()
		return nil
	}),
)

// Serialize encodes the state as a single JSON document.
func Serialize(state *domain.BoardState) ([]byte, error) {
	data, err := json.Marshal(state, timeMarshaler)
	if err != nil {
		return nil, errors.Internalf("serializing board state: %v", err)
	}
	return data, nil
}

// Deserialize decodes a persisted snapshot. It never returns an error:
// malformed input, a wrong top-level shape, or an invalid date all produce
// the defined empty state, so a corrupt snapshot degrades to a fresh start
// instead of a crash.
func Deserialize(data []byte) *domain.BoardState {
	state := domain.NewState()
	if len(data) == 0 {
		return state
	}
	if err := json.Unmarshal(data, state, timeUnmarshaler); err != nil {
		return domain.NewState()
	}
	normalize(state)
	return state
}

// normalize restores the empty-state guarantees that decoding can lose:
// collections are never nil, transient fields never survive a reload.
func normalize(state *domain.BoardState) {
	if state.Boards == nil {
		state.Boards = []domain.Board{}
	}
	if state.Columns == nil {
		state.Columns = []domain.Column{}
	}
	if state.Cards == nil {
		state.Cards = []domain.Card{}
	}
	if state.Users == nil {
		state.Users = []domain.User{}
	}
	if state.Labels == nil {
		state.Labels = []domain.Label{}
	}
	state.Loading = false
	state.Error = ""
}
