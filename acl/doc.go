// Package acl adapts parsed Batfish IPv4 access-control-list JSON into the
// segment.Block/segment.Line shape the generalization engine operates on,
// and implements flavor.Adapter for that shape.
//
// Each line carries 20 attributes: octets 0-3 are the source IP, 4-7 the
// source wildcard mask, 8-11 the destination IP, 12-15 the destination
// wildcard mask, 16-17 the source port range, 18-19 the destination port
// range. The IP protocol (tcp, udp, ip, ...) is carried outside the
// attribute array as the line's Tag, since two lines can never usefully
// merge across different protocols.
package acl
