// Package gsx is the GSX web services client.
//
// Ownership boundary:
// - session lifecycle (Init, Connect, Logout) on a caller-owned Client
// - envelope building with session stamping (Build) and invocation (Invoke)
// - remote fault to domain error mapping (MapFault)
// - the operation table and thin per-operation wrappers
//
// A Client holds exactly one session at a time. Every envelope built while
// a session is active carries its token; Logout and Init clear it.
package gsx
