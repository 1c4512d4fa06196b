package domain

// Ledger is the set of payments of one order as seen inside a reconciliation.
// Mutations are tracked so that storage can persist exactly what changed.
type Ledger struct {
	orderID  uint64
	payments []*Payment
	added    []*Payment
	replaced []*Payment
	removed  []uint64
}

func NewLedger(orderID uint64, payments []*Payment) *Ledger {
	list := make([]*Payment, len(payments))
	copy(list, payments)
	return &Ledger{orderID: orderID, payments: list}
}

func (l *Ledger) OrderID() uint64 {
	return l.orderID
}

// Payments returns the current payment set, including pending mutations.
func (l *Ledger) Payments() []*Payment {
	list := make([]*Payment, len(l.payments))
	copy(list, l.payments)
	return list
}

func (l *Ledger) Find(paymentID uint64) (*Payment, error) {
	for _, p := range l.payments {
		if p.ID != 0 && p.ID == paymentID {
			return p, nil
		}
	}
	return nil, ErrPaymentNotInOrder
}

func (l *Ledger) Add(p *Payment) {
	p.OrderID = l.orderID
	l.payments = append(l.payments, p)
	l.added = append(l.added, p)
}

func (l *Ledger) Replace(p *Payment) error {
	for i, cur := range l.payments {
		if cur.ID != 0 && cur.ID == p.ID {
			p.OrderID = l.orderID
			l.payments[i] = p
			l.replaced = append(l.replaced, p)
			return nil
		}
	}
	return ErrPaymentNotInOrder
}

func (l *Ledger) Remove(paymentID uint64) error {
	for i, cur := range l.payments {
		if cur.ID != 0 && cur.ID == paymentID {
			l.payments = append(l.payments[:i], l.payments[i+1:]...)
			l.removed = append(l.removed, paymentID)
			return nil
		}
	}
	return ErrPaymentNotInOrder
}

func (l *Ledger) Added() []*Payment    { return l.added }
func (l *Ledger) Replaced() []*Payment { return l.replaced }
func (l *Ledger) Removed() []uint64    { return l.removed }
