// Package httpapi is the OneBox HTTP transport.
//
// A OneBox client issues a GET request whose query string carries the
// request parameters and whose cookies may carry an SSO identity. The
// handler turns that into domain.Params, hands it to the dispatcher and
// writes the XML document back as text/xml.
package httpapi
