package doortype

import (
	"fmt"
	"log/slog"
	"strings"
)

// ValidationPolicy decides what a loader does with out-of-range door types.
type ValidationPolicy uint8

const (
	// PolicyWarn logs violations and keeps the values verbatim.
	PolicyWarn ValidationPolicy = iota
	// PolicyOff skips range checks entirely.
	PolicyOff
	// PolicyReject fails the load.
	PolicyReject
	// PolicyClamp clamps into range and logs.
	PolicyClamp
)

var policyNames = map[ValidationPolicy]string{
	PolicyWarn:   "warn",
	PolicyOff:    "off",
	PolicyReject: "reject",
	PolicyClamp:  "clamp",
}

// ParseValidationPolicy parses "off", "warn", "reject" or "clamp".
// Empty string means PolicyWarn.
func ParseValidationPolicy(s string) (ValidationPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PolicyWarn, nil
	}
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return PolicyWarn, fmt.Errorf("unknown validation policy %q", s)
}

func (p ValidationPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("ValidationPolicy(%d)", uint8(p))
}

// UnmarshalText implements encoding.TextUnmarshaler (used by YAML config).
func (p *ValidationPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseValidationPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p ValidationPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Apply runs the policy on dt. The returned door type is dt itself unless
// the policy clamped it; the error is non-nil only under PolicyReject.
func (p ValidationPolicy) Apply(dt *DoorType) (*DoorType, error) {
	if p == PolicyOff || dt == nil {
		return dt, nil
	}
	err := Validate(dt)
	if err == nil {
		return dt, nil
	}
	switch p {
	case PolicyReject:
		return nil, err
	case PolicyClamp:
		clamped := Clamp(dt)
		slog.Warn("door type clamped into range", "door_type", dt.name, "err", err,
			"size", clamped.size, "offset", clamped.offset)
		return clamped, nil
	default:
		slog.Warn("door type out of range, keeping authored values", "door_type", dt.name, "err", err)
		return dt, nil
	}
}
