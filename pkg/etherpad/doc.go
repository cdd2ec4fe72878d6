// Package etherpad is a client for the HTTP API of an Etherpad server.
//
// # Overview
//
// Every operation is a POST to {baseURL}/1/{operation} with a JSON body that
// carries the named arguments and the API key under "apikey". The server
// answers with an envelope:
//
//	{"code": 0, "message": "ok", "data": {...}}
//
// Code 0 yields the data; every other code is returned as an *Error whose
// Kind says who is at fault:
//
//	0  ok                  data (nil when absent)
//	1  invalid parameters  KindInvalidParameters
//	2  internal error      KindInternal
//	3  invalid function    KindInvalidOperation
//	4  invalid API key     KindInvalidParameters (IsInvalidAPIKey reports true)
//	*  anything else       KindUnexpectedResponse
//
// A response without a body, or with a body that is not JSON, is a
// KindTransport error. A JSON body without code or message is a
// KindMalformedEnvelope error. Nothing is retried.
//
// # Usage
//
//	client, err := etherpad.New(apiKey, etherpad.WithBaseURL("https://pad.example.com/api"))
//	if err != nil {
//		return err
//	}
//	if err := client.CreatePad(ctx, "mypad", "hello"); err != nil {
//		return err
//	}
//	text, err := client.GetText(ctx, "mypad", etherpad.Rev(5))
//
// # Verbs
//
// Each operation declares MethodGET (reads) or MethodPOST (mutations), as
// listed by Operations. The declaration is descriptive only: the server
// accepts a JSON body on POST for every operation, so that is what the
// client sends.
//
// # Timeouts
//
// Every call is bounded by Timeout (20 seconds), whatever HTTP client is
// configured. A context passed to an operation can end the call earlier.
//
// # Raw payloads
//
// The typed methods decode only the documented fields of data. Call returns
// data exactly as the server sent it.
package etherpad
