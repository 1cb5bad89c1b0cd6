//nolint:staleread
package a

func excluded(p, q *Node) {
	p, p.next = q, nil
}
