// Package feature implements a provider-based feature-flag abstraction:
// an application asks for a named boolean flag and stays agnostic to
// where the value is sourced.
//
// Four sources are built in: local persistent storage, the request cookie
// header, the latest response headers, and a remote evaluation service
// reached through OpenFeature (flagd backend).
//
//	p, err := feature.New("checkout-v2", "openfeature|flagd", "grpcs://flags.internal:8013")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	notify := func() { /* remote client connected */ }
//	cb := feature.ReadyCallback(&notify)
//	p.OnReady(cb)
//	defer p.OnTeardown(cb)
//
//	if p.Evaluate(ctx) {
//	    // feature is on
//	}
//
// A flag check never fails the host application: unrecognized provider
// kinds, missing values, and remote errors all report the flag as
// disabled. The one construction error is a malformed endpoint URI for a
// remote provider, which indicates a configuration bug.
package feature
