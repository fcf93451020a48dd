// Package soap owns the SOAP 1.1 over HTTP transport for GSX calls.
//
// Ownership boundary:
// - request envelope encoding (session header block, operation wrapper)
// - response envelope decoding into protocol.Node trees
// - fault extraction
// - client TLS setup (CA bundle, client certificate)
package soap
