package span

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// encMode is the CBOR encoder mode for durations.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for durations.
var decMode cbor.DecMode

func init() {
	var err error

	// Deterministic encoding: equal durations always produce equal bytes.
	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient decoding for forward compatibility.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// wireDuration is the CBOR form of a Duration: a [seconds, nanoseconds]
// array.
type wireDuration struct {
	_           struct{} `cbor:",toarray"`
	Seconds     int64
	Nanoseconds int32
}

// jsonDuration is the JSON and YAML form of a Duration.
type jsonDuration struct {
	Seconds     int64 `json:"seconds" yaml:"seconds"`
	Nanoseconds int32 `json:"nanoseconds" yaml:"nanoseconds"`
}

// MarshalCBOR encodes the duration as a two-element array.
func (d Duration) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(wireDuration{Seconds: d.seconds, Nanoseconds: d.nanoseconds})
}

// UnmarshalCBOR decodes a two-element array. The decoded parts are
// re-normalized, so malformed input cannot break the sign invariant.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	var w wireDuration
	if err := decMode.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to decode duration: %w", err)
	}
	*d = New(w.Seconds, w.Nanoseconds)
	return nil
}

// MarshalJSON encodes the duration as {"seconds":…,"nanoseconds":…}.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonDuration{Seconds: d.seconds, Nanoseconds: d.nanoseconds})
}

// UnmarshalJSON decodes {"seconds":…,"nanoseconds":…}, re-normalizing the
// parts.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var j jsonDuration
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to decode duration: %w", err)
	}
	*d = New(j.Seconds, j.Nanoseconds)
	return nil
}

// MarshalYAML encodes the duration as a {seconds, nanoseconds} mapping.
func (d Duration) MarshalYAML() (any, error) {
	return jsonDuration{Seconds: d.seconds, Nanoseconds: d.nanoseconds}, nil
}

// UnmarshalYAML decodes either a {seconds, nanoseconds} mapping or a bare
// scalar number of seconds. Fractional scalars truncate toward zero at
// nanosecond resolution, like SecondsFloat64.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var whole int64
		if err := value.Decode(&whole); err == nil {
			*d = Seconds(whole)
			return nil
		}
		var frac float64
		if err := value.Decode(&frac); err != nil {
			return fmt.Errorf("failed to decode duration: %w", err)
		}
		*d = SecondsFloat64(frac)
		return nil
	}
	var j jsonDuration
	if err := value.Decode(&j); err != nil {
		return fmt.Errorf("failed to decode duration: %w", err)
	}
	*d = New(j.Seconds, j.Nanoseconds)
	return nil
}
