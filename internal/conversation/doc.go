// Package conversation implements session and message retrieval for the
// transcript viewer: persistence, pagination, and projection of stored
// messages into display-ready records with rendered HTML bodies.
package conversation
