// Package prefixlist adapts parsed Batfish route-filter-list JSON
// (IPv4 and IPv6) into the segment.Block/segment.Line shape the
// generalization engine operates on, and implements flavor.Adapter for
// that shape.
//
// Each line carries 11 attributes: attribute 0 is the prefix mask length,
// 1 and 2 are the permitted prefix-length range's low and high bound, and
// 3 through 10 are eight address groups (eight IPv6 hextets, or four IPv4
// octets followed by four "0" slots). The address
// family ("4" or "6") is carried outside the attribute array as the
// line's Tag.
package prefixlist
