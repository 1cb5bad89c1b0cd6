// Code generated by hand for testing. DO NOT EDIT.

package generated

type Node struct {
	next *Node
}

func generated(p, q *Node) {
	p, p.next = q, nil // want "'p' is read"
}
