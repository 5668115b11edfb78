// Package shipping maps delivery zones to flat fees. Fees are
// configuration, never computed.
package shipping

import "fmt"

// Zone is a coarse delivery-cost category.
type Zone string

const (
	ZoneInside  Zone = "inside"  // inside the metro delivery area
	ZoneOutside Zone = "outside" // everywhere else
)

// ParseZone validates a raw zone value from a request.
func ParseZone(s string) (Zone, error) {
	switch Zone(s) {
	case ZoneInside, ZoneOutside:
		return Zone(s), nil
	}
	return "", fmt.Errorf("unknown shipping zone %q", s)
}

// RateTable is the static zone → fee mapping.
type RateTable map[Zone]float64

// NewRateTable builds the table from the configured fees.
func NewRateTable(insideFee, outsideFee float64) RateTable {
	return RateTable{
		ZoneInside:  insideFee,
		ZoneOutside: outsideFee,
	}
}

// Fee returns the flat fee for a zone. A missing entry is a configuration
// fault, not user error.
func (t RateTable) Fee(zone Zone) (float64, error) {
	fee, ok := t[zone]
	if !ok {
		return 0, fmt.Errorf("no shipping rate configured for zone %q", zone)
	}
	return fee, nil
}
