package tree

// Visitor receives exactly one call from Node.Accept, selected by the kind
// of the visited node.
type Visitor interface {
	VisitNull(n *Node)
	VisitString(n *Node)
	VisitNumber(n *Node)
	VisitBoolean(n *Node)
	VisitArray(n *Node)
	VisitObject(n *Node)
}

// Accept dispatches n to the visitor method matching its kind.
func (n *Node) Accept(v Visitor) {
	switch n.kind {
	case KindString:
		v.VisitString(n)
	case KindNumber:
		v.VisitNumber(n)
	case KindBoolean:
		v.VisitBoolean(n)
	case KindArray:
		v.VisitArray(n)
	case KindObject:
		v.VisitObject(n)
	default:
		v.VisitNull(n)
	}
}
