package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("8", day8)
}

func day8(p *puzzle) (answer, error) {
	root, err := parseLicense(p.text)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(root.metadataSum(), root.value()), nil
}

type licenseNode struct {
	children []*licenseNode
	metadata []int
}

func (n *licenseNode) metadataSum() int {
	sum := sumInts(n.metadata)
	for _, child := range n.children {
		sum += child.metadataSum()
	}
	return sum
}

// value is the metadata sum for a leaf. Otherwise each metadata entry is a
// 1-based reference to a child, and the node's value is the sum of the
// referenced children's values; bad references count as 0.
func (n *licenseNode) value() int {
	if len(n.children) == 0 {
		return sumInts(n.metadata)
	}
	var v int
	for _, i := range n.metadata {
		if i >= 1 && i <= len(n.children) {
			v += n.children[i-1].value()
		}
	}
	return v
}

var errLicenseTruncated = errors.New("license ends in the middle of a node")

func parseLicense(s string) (*licenseNode, error) {
	fields := strings.Fields(s)
	ns := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative license number %d", n)
		}
		ns[i] = n
	}
	root, rest, err := parseLicenseNode(ns)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%d trailing numbers after root node", len(rest))
	}
	return root, nil
}

func parseLicenseNode(ns []int) (*licenseNode, []int, error) {
	if len(ns) < 2 {
		return nil, nil, errLicenseTruncated
	}
	numChildren, numMetadata := ns[0], ns[1]
	ns = ns[2:]
	n := new(licenseNode)
	for i := 0; i < numChildren; i++ {
		child, rest, err := parseLicenseNode(ns)
		if err != nil {
			return nil, nil, err
		}
		n.children = append(n.children, child)
		ns = rest
	}
	if len(ns) < numMetadata {
		return nil, nil, errLicenseTruncated
	}
	n.metadata = ns[:numMetadata]
	return n, ns[numMetadata:], nil
}
