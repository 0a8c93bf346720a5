package syntax

import "github.com/nugmanoff/asynccore/internal/logging"

func logNodeCreated(r *Raw) {
	logging.Logger().Debug().
		Uint64("node", uint64(r.id)).
		Str("kind", string(r.kind)).
		Bool("isToken", r.isToken).
		Bool("missing", r.presence == Missing).
		Int("textLength", r.textLength).
		Log("syntax node created")
}

func logVerifyDiagnostic(id NodeID, msg string) {
	logging.Logger().Debug().
		Uint64("node", uint64(id)).
		Str("msg", msg).
		Log("syntax verify diagnostic")
}
