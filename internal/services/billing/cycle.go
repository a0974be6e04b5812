package billing

import "simpasar/internal/models"

// ChargeType is the kind of annual invoice a year calls for.
type ChargeType string

const (
	ChargeHeregistrasi ChargeType = "heregistrasi"
	ChargeSIPTU        ChargeType = "siptu"
)

// Cycle is the resolved position of a year on the three-year billing
// rotation: two heregistrasi years followed by one SIPTU year, anchored
// at the epoch year.
type Cycle struct {
	Year       int
	ChargeType ChargeType
}

// ResolveCycle maps currentYear onto the rotation. Years 0 and 1 of each
// cycle are heregistrasi, year 2 is SIPTU. Total over all integer inputs;
// the modulus is normalized so years before the epoch resolve too.
func ResolveCycle(currentYear, epochYear int) Cycle {
	yearInCycle := (currentYear - epochYear) % 3
	if yearInCycle < 0 {
		yearInCycle += 3
	}
	chargeType := ChargeHeregistrasi
	if yearInCycle == 2 {
		chargeType = ChargeSIPTU
	}
	return Cycle{Year: currentYear, ChargeType: chargeType}
}

// Nominal picks the stall amount field this cycle's charge type bills.
func (c Cycle) Nominal(stall models.Stall) int64 {
	if c.ChargeType == ChargeSIPTU {
		return stall.SIPTUAmount
	}
	return stall.HeregistrasiAmount
}
