package domain

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// PaymentMethod identifies the balance a transaction draws from or pays into.
type PaymentMethod string

const (
	Cash PaymentMethod = "cash"
	Bank PaymentMethod = "bank"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	return m == Cash || m == Bank
}

// OrDefault returns m, or cash when m is empty.
func (m PaymentMethod) OrDefault() PaymentMethod {
	if m == "" {
		return Cash
	}
	return m
}

// PaymentMethods lists every balance bucket in display order.
var PaymentMethods = []PaymentMethod{Cash, Bank}
