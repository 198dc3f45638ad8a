package mongy

// Valuer lets a type supply its own Value. ValueOf calls MongyValue instead
// of inspecting the type by reflection, which is faster for hot paths and
// lets domain types choose how they are projected.
//
//	type Money struct{ Cents int64 }
//
//	func (m Money) MongyValue() mongy.Value {
//	    return mongy.StringValue(fmt.Sprintf("%d.%02d", m.Cents/100, m.Cents%100))
//	}
type Valuer interface {
	MongyValue() Value
}
