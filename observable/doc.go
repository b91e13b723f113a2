// Package observable provides a minimal push-based reactive stream core.
//
// An Observable wraps a subscribe procedure and an explicit list of operator
// stages. Chains are lazy: Map, Filter and Delay only append a stage
// descriptor to a copy of the chain, and nothing runs until Subscribe is
// called on the outermost Observable. Subscribe then wraps the terminal
// Observer once per stage, back to front, and hands the outermost wrapper to
// the source. Values flow outward through the wrappers.
//
// Every Subscribe re-runs the source procedure and builds a private set of
// intermediate observers (cold semantics). Nothing is shared between
// subscriptions.
//
// # Signals
//
//   - Next is transformed by Map, dropped or kept by Filter, and
//     time-shifted by Delay.
//   - Error and Complete are forwarded unmodified by every stage. A Delay
//     stage holds them until its outstanding values have been delivered.
//   - An error returned by, or a panic raised in, a Map or Filter function
//     becomes an OPERATOR_FAULT error on the Error channel, and that stage
//     drops everything it receives afterwards.
//
// # Usage
//
//	src := observable.FromValues("10", "20", "30")
//	chain := src.
//	    Map(func(v any) (any, error) {
//	        n, err := strconv.Atoi(v.(string))
//	        return n / 10, err
//	    }).
//	    Filter(func(v any) (bool, error) { return v != 2, nil }).
//	    Delay(2 * time.Second)
//	err := chain.Subscribe(observable.ObserverFuncs{
//	    OnNext:     func(v any) { fmt.Println(v) },
//	    OnError:    func(err error) { fmt.Println(err) },
//	    OnComplete: func() { fmt.Println("complete") },
//	})
//
// Subscribe only returns an error for configuration faults: a nil or
// incomplete observer, a nil subscribe procedure, or a stage that failed
// validation (nil function, negative delay). Those are detected before the
// source runs.
package observable
