package types

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// DefaultLookbackSlots is the number of slots looked back when estimating all fee levels. Valid values are 1-150.
const DefaultLookbackSlots = 150

// PriorityFeeRequest estimates the priority fee of a serialized transaction or of a list of accounts.
type PriorityFeeRequest struct {
	Transaction string             `json:"transaction,omitempty"`
	AccountKeys []string           `json:"accountKeys,omitempty"`
	Options     PriorityFeeOptions `json:"options"`
}

// PriorityFeeOptions asks either for all levels or for a single level. Use AllFeeLevels or FeeLevel.
type PriorityFeeOptions struct {
	IncludeAllPriorityFeeLevels bool          `json:"includeAllPriorityFeeLevels,omitempty"`
	LookbackSlots               uint8         `json:"lookbackSlots,omitempty"`
	PriorityLevel               PriorityLevel `json:"priorityLevel,omitempty"`
}

// AllFeeLevels returns the options asking for every level over the default lookback.
func AllFeeLevels() PriorityFeeOptions {
	return PriorityFeeOptions{IncludeAllPriorityFeeLevels: true, LookbackSlots: DefaultLookbackSlots}
}

// FeeLevel returns the options asking for level alone. An empty level is sent as MEDIUM.
func FeeLevel(level PriorityLevel) PriorityFeeOptions {
	if level == "" {
		level = PriorityMedium
	}

	return PriorityFeeOptions{PriorityLevel: level}
}

// WantsAllLevels reports whether o asks for every level.
func (o PriorityFeeOptions) WantsAllLevels() bool {
	return o.IncludeAllPriorityFeeLevels
}

// PriorityFeeLevels are fee estimates in micro-lamports per percentile.
type PriorityFeeLevels struct {
	Low       float64 `json:"low"`
	Medium    float64 `json:"medium"`
	High      float64 `json:"high"`
	VeryHigh  float64 `json:"veryHigh"`
	UnsafeMax float64 `json:"unsafeMax"`
}

// PriorityFeeEstimate is either a single estimate or the full set of levels. Exactly one field is set.
type PriorityFeeEstimate struct {
	Estimate *float64           `json:"priorityFeeEstimate,omitempty"`
	Levels   *PriorityFeeLevels `json:"priorityFeeLevels,omitempty"`
}

// UnmarshalJSON picks the half of the union by the member present. A single estimate wins when both are.
func (e *PriorityFeeEstimate) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return fmt.Errorf("%w: %s", ErrUnknownFeeType, b)
	}

	*e = PriorityFeeEstimate{}

	if est := gjson.GetBytes(b, "priorityFeeEstimate"); est.Exists() && est.Type == gjson.Number {
		v := est.Float()
		e.Estimate = &v

		return nil
	}

	if lv := gjson.GetBytes(b, "priorityFeeLevels"); lv.IsObject() {
		var levels PriorityFeeLevels

		if err := json.UnmarshalFromString(lv.Raw, &levels); err != nil {
			return err
		}

		e.Levels = &levels

		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownFeeType, b)
}

// IsLevels reports whether e holds all levels.
func (e PriorityFeeEstimate) IsLevels() bool {
	return e.Levels != nil
}
