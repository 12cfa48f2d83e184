package ast

// Inspect traverses the tree rooted at node in depth first, source order. It starts by
// calling fn(node), if that returns true Inspect is called recursively for each of
// node's children.
//
// Optional children that are absent (a Var with no initialiser, an If with no
// else branch) are skipped, fn is never called with a nil node.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch node := node.(type) {
	case Program:
		for _, stmt := range node {
			Inspect(stmt, fn)
		}
	case *Expression:
		Inspect(node.Expr, fn)
	case *Print:
		Inspect(node.Expr, fn)
	case *Var:
		if node.Init != nil {
			Inspect(node.Init, fn)
		}
	case *Block:
		for _, stmt := range node.Stmts {
			Inspect(stmt, fn)
		}
	case *If:
		Inspect(node.Cond, fn)
		Inspect(node.Then, fn)

		if node.Else != nil {
			Inspect(node.Else, fn)
		}
	case *While:
		Inspect(node.Cond, fn)
		Inspect(node.Body, fn)
	case *Function:
		for _, stmt := range node.Body {
			Inspect(stmt, fn)
		}
	case *Return:
		if node.Value != nil {
			Inspect(node.Value, fn)
		}
	case *Unary:
		Inspect(node.Right, fn)
	case *Binary:
		Inspect(node.Left, fn)
		Inspect(node.Right, fn)
	case *Logical:
		Inspect(node.Left, fn)
		Inspect(node.Right, fn)
	case *Grouping:
		Inspect(node.Expr, fn)
	case *Assign:
		Inspect(node.Value, fn)
	case *Call:
		Inspect(node.Callee, fn)

		for _, arg := range node.Args {
			Inspect(arg, fn)
		}
	}
}
