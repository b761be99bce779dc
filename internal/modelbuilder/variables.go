// Package modelbuilder turns a normalized domain.Domain into a
// concrete mip.Model: the decision variables, the five constraint
// families, and the objective of spec.md §4.2.
package modelbuilder

import (
	"fmt"

	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/mip"
)

// XKey identifies one assignment decision variable x[m,b,g,s].
type XKey struct {
	Mechanic domain.Mechanic
	Base     domain.BaseID
	Period   domain.PeriodID
	Shift    domain.ShiftID
}

// YKey identifies one avoidance linearization variable y[m1,m2,b,g,s].
type YKey struct {
	Pair domain.MechanicPair
	Slot domain.Slot
}

// Built is the fully constructed model plus the variable indices the
// Solution Extractor needs to read values back out.
type Built struct {
	Model mip.Model
	X     map[XKey]mip.Var
	Y     map[YKey]mip.Var
}

func addVariables(model mip.Model, d *domain.Domain) (map[XKey]mip.Var, map[YKey]mip.Var, error) {
	slots := d.Slots()

	x := make(map[XKey]mip.Var, len(d.Mechanics)*len(slots))
	for _, m := range d.Mechanics {
		for _, slot := range slots {
			key := XKey{Mechanic: m, Base: slot.Base, Period: slot.Period, Shift: slot.Shift}
			v, err := model.AddBinaryVariable(fmt.Sprintf("x_m%d_b%d_g%d_s%d", m, slot.Base, slot.Period, slot.Shift))
			if err != nil {
				return nil, nil, fmt.Errorf("modelbuilder: adding x%v: %w", key, err)
			}
			x[key] = v
		}
	}

	pairs := d.Avoid.Pairs()
	y := make(map[YKey]mip.Var, len(pairs)*len(slots))
	for _, pair := range pairs {
		for _, slot := range slots {
			key := YKey{Pair: pair, Slot: slot}
			name := fmt.Sprintf("y_m%d_m%d_b%d_g%d_s%d", pair.Low, pair.High, slot.Base, slot.Period, slot.Shift)
			v, err := model.AddBinaryVariable(name)
			if err != nil {
				return nil, nil, fmt.Errorf("modelbuilder: adding y%v: %w", key, err)
			}
			y[key] = v
		}
	}

	return x, y, nil
}
