// Package flavor defines the capability-set contract every segment flavor
// (ACL, prefix-list, route-policy) implements, plus the shared device-JSON
// ingestion shape those flavors decode from.
//
// The generalization engine (align, matching, merge, minimize, driver) is
// written against the Adapter interface and never imports acl, prefixlist,
// or routepolicy directly — it is the driver's caller that picks a
// concrete Adapter: the driver depends only on a capability set {parse,
// gapPenalty, lineScore, attributeCount, format}, a variant/union preferred
// over a function-map.
package flavor
