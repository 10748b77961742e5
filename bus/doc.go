// Package bus is an untyped, dynamically-checked object notification bus.
//
// It provides the runtime pieces a typed signal layer needs and nothing more:
// runtime type tags, a tagged Value container, interned detail strings
// (quarks), per-type signal registration, per-instance handler lists, and
// synchronous emission with accumulators.
//
// Types and signals are process-wide. A signal is registered once, together
// with the object type that owns it:
//
//	var buttonType = bus.RegisterType(bus.TypeInfo{
//	    Name:   "Button",
//	    Parent: bus.TypeObject,
//	    Signals: []bus.SignalSpec{{
//	        Name:   "clicked",
//	        Params: []bus.Type{bus.TypeString},
//	        Return: bus.TypeNone,
//	    }},
//	})
//
// Instances carry their own handler lists:
//
//	obj := bus.NewObject(buttonType, nil)
//	id, _ := bus.LookupSignal("clicked", buttonType)
//	h, _ := obj.Connect(id, 0, bus.Closure{Invoke: func(v []bus.Value) (bus.Value, error) {
//	    s, _ := v[1].AsString()
//	    fmt.Println("clicked:", s)
//	    return bus.Value{}, nil
//	}}, false)
//	obj.Emit(id, 0, bus.StringValue("left"))
//	obj.Disconnect(h)
//
// Everything here is untyped: handlers receive a []Value whose first element
// is the emitting instance. Typed access lives in the parent package.
package bus
