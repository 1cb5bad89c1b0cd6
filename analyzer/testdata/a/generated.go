// Code generated by hand for testing. DO NOT EDIT.

package a

func generated(p, q *Node) {
	p, p.next = q, nil
}
