package rel

// This file contains example data for a suppliers, parts & orders database, using
// the example provided by C. J. Date in his book "Database in Depth" in Figure 1-3,
// plus the payments used by the grouping examples.

// Each is a function so that tests can't modify each other's data.

// suppliers relation
func suppliers() *Relation {
	return New([]Record{
		{"SNO": 1, "SName": "Smith", "Status": 20, "City": "London"},
		{"SNO": 2, "SName": "Jones", "Status": 10, "City": "Paris"},
		{"SNO": 3, "SName": "Blake", "Status": 30, "City": "Paris"},
		{"SNO": 4, "SName": "Clark", "Status": 20, "City": "London"},
		{"SNO": 5, "SName": "Adams", "Status": 30, "City": "Athens"},
	})
}

// parts relation
func parts() *Relation {
	return New([]Record{
		{"PNO": 1, "PName": "Nut", "Color": "Red", "Weight": 12.0, "City": "London"},
		{"PNO": 2, "PName": "Bolt", "Color": "Green", "Weight": 17.0, "City": "Paris"},
		{"PNO": 3, "PName": "Screw", "Color": "Blue", "Weight": 17.0, "City": "Oslo"},
		{"PNO": 4, "PName": "Screw", "Color": "Red", "Weight": 14.0, "City": "London"},
		{"PNO": 5, "PName": "Cam", "Color": "Blue", "Weight": 12.0, "City": "Paris"},
		{"PNO": 6, "PName": "Cog", "Color": "Red", "Weight": 19.0, "City": "London"},
	})
}

// orders relation
func orders() *Relation {
	return New([]Record{
		{"PNO": 1, "SNO": 1, "Qty": 300},
		{"PNO": 1, "SNO": 2, "Qty": 200},
		{"PNO": 1, "SNO": 3, "Qty": 400},
		{"PNO": 1, "SNO": 4, "Qty": 200},
		{"PNO": 1, "SNO": 5, "Qty": 100},
		{"PNO": 1, "SNO": 6, "Qty": 100},
		{"PNO": 2, "SNO": 1, "Qty": 300},
		{"PNO": 2, "SNO": 2, "Qty": 400},
		{"PNO": 3, "SNO": 2, "Qty": 200},
		{"PNO": 4, "SNO": 2, "Qty": 200},
		{"PNO": 4, "SNO": 4, "Qty": 300},
		{"PNO": 4, "SNO": 5, "Qty": 400},
	})
}

// payments relation; amounts are in their own currency
func payments() []Record {
	return []Record{
		{"product": "1R", "region": "eu", "vat": 0.0, "amount": 10.0, "currency": "EUR"},
		{"product": "1R", "region": "eu", "vat": 2.5, "amount": 20.0, "currency": "EUR"},
		{"product": "1R", "region": "noneu", "vat": 3.0, "amount": 15.0, "currency": "USD"},
		{"product": "3R", "region": "eu", "vat": 0.0, "amount": 40.0, "currency": "EUR"},
		{"product": "3R", "region": "noneu", "vat": 0.0, "amount": 750.0, "currency": "CZK"},
	}
}

// eurRates is the value of one euro in other currencies
var eurRates = map[string]float64{"EUR": 1, "CZK": 25, "USD": 1.25}

// field returns a key function which reads the named field
func field(name string) func(Record) interface{} {
	return func(rec Record) interface{} { return rec[name] }
}
