package domain

// MonthCoverage indexes which (source, month) pairs already have a materialized transaction.
type MonthCoverage map[string]map[MonthKey]struct{}

// InstallmentCoverage indexes transactions by installment id.
func InstallmentCoverage(txns []Transaction) MonthCoverage {
	return buildCoverage(txns, func(t Transaction) string { return t.InstallmentID })
}

// RecurringCoverage indexes transactions by recurring template id.
func RecurringCoverage(txns []Transaction) MonthCoverage {
	return buildCoverage(txns, func(t Transaction) string { return t.RecurringID })
}

func buildCoverage(txns []Transaction, source func(Transaction) string) MonthCoverage {
	c := MonthCoverage{}
	for _, t := range txns {
		if id := source(t); id != "" {
			c.Add(id, t.Date.MonthKey())
		}
	}
	return c
}

// Covered reports whether sourceID already has a transaction in month.
func (c MonthCoverage) Covered(sourceID string, month MonthKey) bool {
	_, ok := c[sourceID][month]
	return ok
}

// Add marks month as covered for sourceID.
func (c MonthCoverage) Add(sourceID string, month MonthKey) {
	months, ok := c[sourceID]
	if !ok {
		months = map[MonthKey]struct{}{}
		c[sourceID] = months
	}
	months[month] = struct{}{}
}
