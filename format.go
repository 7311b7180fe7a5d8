package loggy

import (
	"errors"
	"fmt"
	"strings"
)

// formatError captures an error's full textual form at the boundary: the
// concrete type and message, each unwrapped cause, and any extra detail a
// formatter-aware error renders (pkg/errors-style stacks come through %+v).
func formatError(err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%T: %s", err, err.Error())
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(&b, "\ncaused by: %T: %s", cause, cause.Error())
	}
	if detail := fmt.Sprintf("%+v", err); detail != err.Error() {
		b.WriteString("\n")
		b.WriteString(detail)
	}
	return b.String()
}
