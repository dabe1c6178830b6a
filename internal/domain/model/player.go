// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// IDField is the key shared by every raw record that names its player.
const IDField = "playerId"

// domesticCountries are the homeCountry spellings treated as the USA.
var domesticCountries = map[string]struct{}{
	"usa":                      {},
	"us":                       {},
	"united states":            {},
	"united states of america": {},
}

// Bio is a player's identity and descriptive record.
type Bio struct {
	PlayerID      int     `json:"playerId"`
	Name          string  `json:"name"`
	FirstName     string  `json:"firstName,omitempty"`
	LastName      string  `json:"lastName,omitempty"`
	BirthDate     string  `json:"birthDate,omitempty"`
	Height        float64 `json:"height,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	CurrentTeam   string  `json:"currentTeam"`
	League        string  `json:"league"`
	PhotoURL      *string `json:"photoUrl,omitempty"`
	Position      *string `json:"position,omitempty"`
	HomeTown      string  `json:"homeTown,omitempty"`
	HomeCountry   string  `json:"homeCountry,omitempty"`
	Nationality   string  `json:"nationality,omitempty"`
	International *bool   `json:"international,omitempty"`
}

// IsInternational reports whether the player counts as an international
// prospect. An explicit international flag wins; otherwise any homeCountry
// other than a USA spelling qualifies, including a missing one.
func (b Bio) IsInternational() bool {
	if b.International != nil {
		return *b.International
	}
	_, domestic := domesticCountries[strings.ToLower(strings.TrimSpace(b.HomeCountry))]
	return !domestic
}

// UnmarshalJSON accepts playerId as a number or a numeric string.
func (b *Bio) UnmarshalJSON(data []byte) error {
	type plain Bio
	var aux struct {
		plain
		PlayerID any `json:"playerId"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("bio: %w", err)
	}
	*b = Bio(aux.plain)
	if aux.PlayerID == nil {
		return nil
	}
	id, err := parseID(aux.PlayerID)
	if err != nil {
		return fmt.Errorf("bio: %w", err)
	}
	b.PlayerID = id
	return nil
}

// Ranking maps scout-source names to nullable ranks for one player.
// The key set is open: any scout may be absent or null.
type Ranking struct {
	PlayerID int
	Scouts   map[string]*float64
}

// Scout returns the rank a scout gave, if it is a number.
func (r *Ranking) Scout(name string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	v, ok := r.Scouts[name]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// ScoutNames returns the scout keys in lexical order.
func (r *Ranking) ScoutNames() []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.Scouts)
}

// MarshalJSON flattens the ranking back into an open object.
func (r Ranking) MarshalJSON() ([]byte, error) {
	return marshalOpen(r.PlayerID, r.Scouts)
}

// UnmarshalJSON decodes an open object; values that are not finite numbers
// decode to null.
func (r *Ranking) UnmarshalJSON(data []byte) error {
	id, values, err := unmarshalOpen(data)
	if err != nil {
		return fmt.Errorf("ranking: %w", err)
	}
	r.PlayerID = id
	r.Scouts = values
	return nil
}

// Measurement maps physical-test names to nullable results for one player.
type Measurement struct {
	PlayerID int
	Values   map[string]*float64
}

// Value returns a measurement result, if it is a number.
func (m *Measurement) Value(name string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m.Values[name]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// MarshalJSON flattens the measurement back into an open object.
func (m Measurement) MarshalJSON() ([]byte, error) {
	return marshalOpen(m.PlayerID, m.Values)
}

// UnmarshalJSON decodes an open object; values that are not finite numbers
// decode to null.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	id, values, err := unmarshalOpen(data)
	if err != nil {
		return fmt.Errorf("measurement: %w", err)
	}
	m.PlayerID = id
	m.Values = values
	return nil
}

// GameLog is one game played by a player. Only numeric fields are kept.
type GameLog struct {
	PlayerID int
	Values   map[string]float64
}

// Get returns a counting stat, treating a missing field as 0.
func (g GameLog) Get(key string) float64 {
	return g.Values[key]
}

// MarshalJSON flattens the log back into an open object.
func (g GameLog) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(g.Values)+1)
	for k, v := range g.Values {
		out[k] = v
	}
	out[IDField] = g.PlayerID
	return json.Marshal(out)
}

// UnmarshalJSON decodes an open object, dropping non-numeric fields.
func (g *GameLog) UnmarshalJSON(data []byte) error {
	id, values, err := unmarshalOpen(data)
	if err != nil {
		return fmt.Errorf("game log: %w", err)
	}
	g.PlayerID = id
	g.Values = make(map[string]float64, len(values))
	for k, v := range values {
		if v != nil {
			g.Values[k] = *v
		}
	}
	return nil
}

// Snapshot is the static raw record store: four collections sharing playerId.
type Snapshot struct {
	Bios         []Bio         `json:"bio"`
	Rankings     []Ranking     `json:"scoutRankings"`
	Measurements []Measurement `json:"measurements"`
	GameLogs     []GameLog     `json:"game_logs"`
}

// UnmarshalJSON decodes the four collections. Ranking, measurement and game
// log records without a playerId cannot link to any bio and are skipped.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw struct {
		Bios         []Bio             `json:"bio"`
		Rankings     []json.RawMessage `json:"scoutRankings"`
		Measurements []json.RawMessage `json:"measurements"`
		GameLogs     []json.RawMessage `json:"game_logs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rankings, err := decodeLinked[Ranking](raw.Rankings)
	if err != nil {
		return err
	}
	measurements, err := decodeLinked[Measurement](raw.Measurements)
	if err != nil {
		return err
	}
	logs, err := decodeLinked[GameLog](raw.GameLogs)
	if err != nil {
		return err
	}
	*s = Snapshot{Bios: raw.Bios, Rankings: rankings, Measurements: measurements, GameLogs: logs}
	return nil
}

// decodeLinked decodes each record, dropping those that carry no playerId.
func decodeLinked[T any](items []json.RawMessage) ([]T, error) {
	if items == nil {
		return nil, nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			if errors.Is(err, errMissingID) {
				continue
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

var errMissingID = errors.New("missing " + IDField)

func marshalOpen(id int, values map[string]*float64) ([]byte, error) {
	out := make(map[string]any, len(values)+1)
	for k, v := range values {
		if v == nil {
			out[k] = nil
			continue
		}
		out[k] = *v
	}
	out[IDField] = id
	return json.Marshal(out)
}

func unmarshalOpen(data []byte) (int, map[string]*float64, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, nil, err
	}
	rawID, ok := raw[IDField]
	if !ok {
		return 0, nil, errMissingID
	}
	id, err := parseID(rawID)
	if err != nil {
		return 0, nil, err
	}
	values := make(map[string]*float64, len(raw))
	for k, v := range raw {
		if k == IDField {
			continue
		}
		values[k] = numberOrNil(v)
	}
	return id, values, nil
}

func parseID(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("%s %v is not an integer", IDField, t)
		}
		return int(t), nil
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("%s %q: %w", IDField, t, err)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("%s has unsupported type %T", IDField, v)
	}
}

func numberOrNil(v any) *float64 {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
