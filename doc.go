// Package hood is a client for the Robinhood private REST API.
//
// A Client is obtained from a Builder. Without credentials the client is
// unauthenticated and can only reach public resources such as instruments:
//
//	rh, err := hood.New().Build(ctx)
//	if err != nil {
//		// ...
//	}
//	it := rh.Instruments()
//	for inst, err := range it.All(ctx) {
//		if err != nil {
//			// ...
//		}
//		fmt.Println(inst.Symbol)
//	}
//
// With credentials the Builder runs one of two login flows (OAuth2 password
// grant when an OAuth client id is configured, the legacy token flow
// otherwise) and bakes the resulting Authorization header into every request
// the client makes. If the server demands a multi-factor code, the Builder
// asks its configured CodeSource once and retries the login with the code.
package hood
