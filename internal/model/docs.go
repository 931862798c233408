// package model contains the request and response descriptors exchanged with
// transports. the response side is a set of capabilities rather than owned
// data: a transport hands over a status, a header lookup and a deferred body
// parser, and keeps everything else (connections, buffers, cancellation) to
// itself.
package model
