// SPDX-License-Identifier: Unlicense OR MIT

package widget

// Property names an observable property of a Slider.
type Property uint8

const (
	PropStart Property = iota
	PropEnd
	PropStartThumbX
	PropEndThumbX
	PropStartDesc
	PropEndDesc
	PropMinDesc
	PropMaxDesc
	PropStepValue
	PropIsPressed
	PropConfig
)

type observer struct {
	id int
	fn func(Property)
}

type observers struct {
	next int
	list []observer
}

// Watch registers fn to be called after a property of s has changed.
// Observers run synchronously, in registration order, after the new
// value is stored. The returned function unregisters fn.
func (s *Slider) Watch(fn func(Property)) (cancel func()) {
	o := &s.observers
	o.next++
	id := o.next
	o.list = append(o.list, observer{id: id, fn: fn})
	return func() {
		for i, ob := range o.list {
			if ob.id == id {
				o.list = append(o.list[:i:i], o.list[i+1:]...)
				return
			}
		}
	}
}

func (s *Slider) notify(p Property) {
	for _, ob := range s.observers.list {
		ob.fn(p)
	}
}

func (p Property) String() string {
	switch p {
	case PropStart:
		return "Start"
	case PropEnd:
		return "End"
	case PropStartThumbX:
		return "StartThumbX"
	case PropEndThumbX:
		return "EndThumbX"
	case PropStartDesc:
		return "StartDesc"
	case PropEndDesc:
		return "EndDesc"
	case PropMinDesc:
		return "MinDesc"
	case PropMaxDesc:
		return "MaxDesc"
	case PropStepValue:
		return "StepValue"
	case PropIsPressed:
		return "IsPressed"
	case PropConfig:
		return "Config"
	default:
		panic("unknown Property")
	}
}

func (a TouchArea) String() string {
	switch a {
	case Unknown:
		return "Unknown"
	case StartThumb:
		return "StartThumb"
	case EndThumb:
		return "EndThumb"
	default:
		panic("unknown TouchArea")
	}
}
