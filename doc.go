// Package signalman provides typed signals over the untyped object bus in
// package bus.
//
// A signal is declared once, with its owner type, argument tuple and return:
//
//	var Something = signalman.Define[*Widget]("something",
//		signalman.Shape1(signalman.String), signalman.Returns(signalman.Uint64)).
//		WithFlags(bus.SignalRunLast | bus.SignalDetailed).
//		WithAccumulator(signalman.Sum[uint64]())
//
// Its Build output is registered with the owner type. After that handlers
// connect and emissions run without any runtime type assertions in user
// code:
//
//	id, err := Something.Connect(w, func(w *Widget, args signalman.Args1[string]) uint64 {
//		return uint64(len(args.V0))
//	})
//	total, err := Something.Emit(w, signalman.Tuple1("four"))
//
// Detail views (Signal.Detailed) restrict handlers to emissions carrying a
// detail. Streams (Details.Stream) turn a signal into a sequence read with
// Next, Seq or Chan; they hold their target weakly and disconnect when
// closed or collected.
package signalman
