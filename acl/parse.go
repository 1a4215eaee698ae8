package acl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

var plainIPv4 = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)

// getSrcOrDstIps resolves one side (src or dst) of a match condition's
// IpSpace into the list of prefix/wildcard strings it denotes, per the
// five recognized IpSpace shapes. A nil space (the header space had no
// constraint on this side) means "any", returned as a single "0.0.0.0/0".
func getSrcOrDstIps(space *ipSpaceJSON) ([]string, error) {
	if space == nil {
		return []string{"0.0.0.0/0"}, nil
	}
	switch {
	case strings.Contains(space.Class, "IpWildcardIpSpace"):
		return []string{space.IPWildcard}, nil
	case strings.Contains(space.Class, "PrefixIpSpace"):
		return []string{space.Prefix}, nil
	case strings.Contains(space.Class, "AclIpSpace"):
		var ips []string
		for _, line := range space.Lines {
			if line.Action != "PERMIT" {
				return nil, fmt.Errorf("acl: %w: AclIpSpace line action %q", flavor.ErrUnrecognizedShape, line.Action)
			}
			ips = append(ips, line.IPSpace.IPWildcard)
		}
		return ips, nil
	case strings.Contains(space.Class, "UniverseIpSpace"):
		return []string{"0.0.0.0/0"}, nil
	case strings.Contains(space.Class, "IpIpSpace"):
		return []string{space.IP + "/32"}, nil
	default:
		return nil, fmt.Errorf("acl: %w: IpSpace class %q", flavor.ErrUnrecognizedShape, space.Class)
	}
}

// processDisjunctsConjuncts walks a boolean match-condition tree, folding
// every headerSpace leaf's protocol/IP/port constraints into the
// accumulators. Unlike the tool this was ported from, a dstIps leaf
// extends dstIps and a srcIps leaf extends srcIps — two independently
// accumulated slices, not one shared one.
func processDisjunctsConjuncts(entities []matchConditionJSON, protocols, srcIps, dstIps, srcPorts, dstPorts []string) ([]string, []string, []string, []string, []string, error) {
	var err error
	for _, entity := range entities {
		switch {
		case len(entity.Disjuncts) > 0:
			protocols, srcIps, dstIps, srcPorts, dstPorts, err = processDisjunctsConjuncts(entity.Disjuncts, protocols, srcIps, dstIps, srcPorts, dstPorts)
		case len(entity.Conjuncts) > 0:
			protocols, srcIps, dstIps, srcPorts, dstPorts, err = processDisjunctsConjuncts(entity.Conjuncts, protocols, srcIps, dstIps, srcPorts, dstPorts)
		case entity.HeaderSpace != nil:
			hs := entity.HeaderSpace
			if len(hs.DstPorts) > 0 {
				if len(dstPorts) > 0 {
					return nil, nil, nil, nil, nil, fmt.Errorf("acl: %w: conflicting dstPorts in match tree", flavor.ErrMalformedLine)
				}
				dstPorts = hs.DstPorts
			}
			if len(hs.SrcPorts) > 0 {
				if len(srcPorts) > 0 {
					return nil, nil, nil, nil, nil, fmt.Errorf("acl: %w: conflicting srcPorts in match tree", flavor.ErrMalformedLine)
				}
				srcPorts = hs.SrcPorts
			}
			var tmp []string
			tmp, err = getSrcOrDstIps(hs.SrcIps)
			if err == nil && !isUniverse(tmp) {
				srcIps = append(srcIps, tmp...)
			}
			if err == nil {
				tmp, err = getSrcOrDstIps(hs.DstIps)
				if err == nil && !isUniverse(tmp) {
					dstIps = append(dstIps, tmp...)
				}
			}
			if err == nil && len(hs.IPProtocols) > 0 {
				protocols = hs.IPProtocols
			}
		case strings.Contains(entity.Class, "FalseExpr") || strings.Contains(entity.Class, "TrueExpr"):
			// Contributes nothing.
		default:
			err = fmt.Errorf("acl: %w: match condition class %q", flavor.ErrUnrecognizedShape, entity.Class)
		}
		if err != nil {
			return nil, nil, nil, nil, nil, err
		}
	}
	return protocols, srcIps, dstIps, srcPorts, dstPorts, nil
}

func isUniverse(ips []string) bool {
	return len(ips) == 1 && ips[0] == "0.0.0.0/0"
}

// getIPAndMask splits a prefix or wildcard string into its IP and wildcard
// mask, converting a CIDR length into dotted-wildcard notation.
func getIPAndMask(prefix string) (ip, mask string, err error) {
	switch {
	case prefix == "0.0.0.0/0":
		return "0.0.0.0", "255.255.255.255", nil
	case strings.Contains(prefix, "/"):
		parts := strings.SplitN(prefix, "/", 2)
		return parts[0], convertToWildcardMask(parts[1]), nil
	case plainIPv4.MatchString(prefix):
		return prefix, "0.0.0.0", nil
	default:
		return "", "", fmt.Errorf("acl: %w: prefix %q", flavor.ErrMalformedLine, prefix)
	}
}

// convertToWildcardMask turns a CIDR length into its inverse-mask dotted
// form (26 -> "0.0.0.63"). Falls back to returning the input unchanged if
// it isn't a plain integer, matching a defensively tolerant upstream
// parser that accepted a mask already given in dotted form.
func convertToWildcardMask(lengthStr string) string {
	length, err := strconv.Atoi(lengthStr)
	if err != nil {
		return lengthStr
	}
	var bits [32]byte
	for i := 0; i < 32; i++ {
		if i < length {
			bits[i] = '0'
		} else {
			bits[i] = '1'
		}
	}
	octet := func(start int) string {
		v, _ := strconv.ParseUint(string(bits[start:start+8]), 2, 8)
		return strconv.FormatUint(v, 10)
	}
	return octet(0) + "." + octet(8) + "." + octet(16) + "." + octet(24)
}

// getLine builds one 20-attribute Line from a protocol and the resolved
// src/dst IP, mask, and port fields.
func getLine(identity int, protocol, srcIP, srcMask, dstIP, dstMask, srcPort, dstPort string) *segment.Line {
	l := segment.NewLine(protocol, identity, attributeCount)
	i := 0
	for _, octet := range strings.Split(srcIP, ".") {
		l.Attrs[i] = octet
		i++
	}
	for _, octet := range strings.Split(srcMask, ".") {
		l.Attrs[i] = octet
		i++
	}
	for _, octet := range strings.Split(dstIP, ".") {
		l.Attrs[i] = octet
		i++
	}
	for _, octet := range strings.Split(dstMask, ".") {
		l.Attrs[i] = octet
		i++
	}
	lo, hi := splitPortRange(srcPort)
	l.Attrs[i], l.Attrs[i+1] = lo, hi
	i += 2
	lo, hi = splitPortRange(dstPort)
	l.Attrs[i], l.Attrs[i+1] = lo, hi
	return l
}

func splitPortRange(r string) (lo, hi string) {
	if r == "" {
		return "-1", "-1"
	}
	parts := strings.SplitN(r, "-", 2)
	if len(parts) == 1 {
		return parts[0], parts[0]
	}
	return parts[0], parts[1]
}

// parseSegment builds a block sequence from one decoded ACL's lines,
// merging consecutive same-action lines into one Block each, per
// segment.BlockSequence's invariant.
func parseSegment(name, device, format string, raw []byte) (*segment.BlockSequence, error) {
	doc, err := decodeACL(raw)
	if err != nil {
		return nil, fmt.Errorf("acl: %w: %v", flavor.ErrMalformedLine, err)
	}

	bs := &segment.BlockSequence{Name: name, Device: device, Format: format}
	var current *segment.Block
	identity := 0

	for _, line := range doc.Lines {
		if current == nil || current.Action != segment.Action(strings.ToLower(line.Action)) {
			current = &segment.Block{Action: segment.Action(strings.ToLower(line.Action))}
			bs.Blocks = append(bs.Blocks, current)
		}

		protocols, srcIps, dstIps, srcPorts, dstPorts, err := resolveLineConstraints(line)
		if err != nil {
			return nil, err
		}

		for _, protocol := range protocols {
			for _, srcPrefix := range srcIps {
				srcIP, srcMask, err := getIPAndMask(srcPrefix)
				if err != nil {
					return nil, err
				}
				for _, dstPrefix := range dstIps {
					dstIP, dstMask, err := getIPAndMask(dstPrefix)
					if err != nil {
						return nil, err
					}
					emitLines(current, &identity, protocol, srcIP, srcMask, dstIP, dstMask, srcPorts, dstPorts)
				}
			}
		}
	}
	return bs, nil
}

func resolveLineConstraints(line aclLineJSON) (protocols, srcIps, dstIps, srcPorts, dstPorts []string, err error) {
	mc := line.MatchCondition
	switch {
	case mc.HeaderSpace != nil:
		hs := mc.HeaderSpace
		if len(hs.IPProtocols) > 0 {
			protocols = hs.IPProtocols
		} else {
			protocols = []string{"ip"}
		}
		srcIps, err = getSrcOrDstIps(hs.SrcIps)
		if err != nil {
			return
		}
		dstIps, err = getSrcOrDstIps(hs.DstIps)
		if err != nil {
			return
		}
		srcPorts, dstPorts = hs.SrcPorts, hs.DstPorts
	case len(mc.Conjuncts) > 0:
		protocols, srcIps, dstIps, srcPorts, dstPorts, err = processDisjunctsConjuncts(mc.Conjuncts, nil, nil, nil, nil, nil)
		if err != nil {
			return
		}
		if len(protocols) == 0 {
			protocols = []string{"ip"}
		}
		if len(srcIps) == 0 {
			srcIps = []string{"0.0.0.0/0"}
		}
		if len(dstIps) == 0 {
			dstIps = []string{"0.0.0.0/0"}
		}
	default:
		err = fmt.Errorf("acl: %w: line has neither headerSpace nor conjuncts", flavor.ErrUnrecognizedShape)
	}
	return
}

func emitLines(block *segment.Block, identity *int, protocol, srcIP, srcMask, dstIP, dstMask string, srcPorts, dstPorts []string) {
	switch {
	case len(dstPorts) > 0 && len(srcPorts) > 0:
		for _, dstPort := range dstPorts {
			for _, srcPort := range srcPorts {
				block.Lines = append(block.Lines, getLine(*identity, protocol, srcIP, srcMask, dstIP, dstMask, srcPort, dstPort))
				*identity++
			}
		}
	case len(dstPorts) > 0:
		for _, dstPort := range dstPorts {
			block.Lines = append(block.Lines, getLine(*identity, protocol, srcIP, srcMask, dstIP, dstMask, "", dstPort))
			*identity++
		}
	case len(srcPorts) > 0:
		for _, srcPort := range srcPorts {
			block.Lines = append(block.Lines, getLine(*identity, protocol, srcIP, srcMask, dstIP, dstMask, srcPort, ""))
			*identity++
		}
	default:
		block.Lines = append(block.Lines, getLine(*identity, protocol, srcIP, srcMask, dstIP, dstMask, "", ""))
		*identity++
	}
}
