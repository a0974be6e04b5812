package sequence

import "time"

// Prefix describes one code family: the constant or derived scope string
// and the fixed width of the zero-padded counter that follows it.
type Prefix struct {
	Value string
	Width int
}

// Code families used across the portal. Date-scoped prefixes restart
// their counter whenever the date changes, because a new date is simply a
// new prefix.

func ForSuperAdmin() Prefix { return Prefix{Value: "USR", Width: 3} }

func ForMarketUser(marketCode string) Prefix { return Prefix{Value: marketCode, Width: 3} }

func ForStall(marketCode string) Prefix { return Prefix{Value: marketCode + "LAP", Width: 3} }

func ForStallType() Prefix { return Prefix{Value: "TYPE", Width: 3} }

func ForVendor() Prefix { return Prefix{Value: "CUST", Width: 5} }

func ForMarket() Prefix { return Prefix{Value: "PSR", Width: 4} }

func ForDailyDue(day time.Time) Prefix {
	return Prefix{Value: "IU" + day.Format("20060102"), Width: 5}
}

func ForAnnualInvoice(day time.Time) Prefix {
	return Prefix{Value: "INV" + day.Format("060102"), Width: 4}
}
