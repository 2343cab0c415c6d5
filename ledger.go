package roverfactorytest

// ledger is the session-scoped, append-only record of units already finalized.
// Lookup is keyed by serial and used to refuse re-evaluation of a known unit.
// Results files from previous sessions are never reloaded.
type ledger struct {
	bySerial map[string]*UnitRecord
	count    int
}

func newLedger() *ledger {
	return &ledger{bySerial: map[string]*UnitRecord{}}
}

func (l *ledger) add(rec *UnitRecord) {
	l.bySerial[rec.Serial] = rec
	l.count++
}

func (l *ledger) has(serial string) bool {
	_, ok := l.bySerial[serial]
	return ok
}

func (l *ledger) size() int {
	return l.count
}
