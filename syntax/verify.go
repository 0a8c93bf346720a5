package syntax

// Verify walks root and reports, via diag, every node whose Kind fails
// knownKind — a non-fatal post-construction check, per §7's "Syntax
// verification. Optional post-construction walk that reports unknown-kind
// nodes via a diagnostic engine; non-fatal." The diagnostic engine itself
// is out of scope (§1); diag is the caller-supplied collaborator.
func Verify(root *Raw, knownKind func(Kind) bool, diag func(id NodeID, msg string)) {
	if root == nil || knownKind == nil || diag == nil {
		return
	}
	verifyNode(root, knownKind, diag)
}

func verifyNode(node *Raw, knownKind func(Kind) bool, diag func(id NodeID, msg string)) {
	if node == nil {
		return
	}
	if !knownKind(node.kind) {
		msg := "unknown syntax kind: " + string(node.kind)
		logVerifyDiagnostic(node.id, msg)
		diag(node.id, msg)
	}
	if !node.isToken {
		for _, c := range node.layout.children {
			verifyNode(c, knownKind, diag)
		}
	}
}
